// Package repository provides the MongoDB-backed export log.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	exportsCollection = "exports"
	exportsTTLIndex   = "timestamp_ttl"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections kept open.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can stay idle before it is closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout bounds the initial connect and ping.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for a usable server.
	ServerSelectionTimeout time.Duration
	// SocketTimeout bounds socket reads and writes.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns a configuration sized for a low-volume audit log.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            20,
		MinPoolSize:            2,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          15 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and collection access.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Exports  *mongo.Collection
}

// NewMongoDB connects with the default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and ensures the export log indexes.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:   client,
		Database: db,
		Exports:  db.Collection(exportsCollection),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates the query indexes on the exports collection.
// The TTL index is managed by SetExportsTTL.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	_, err := m.Exports.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "order_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "channel", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	return err
}

// SetExportsTTL replaces the expiry index on the exports collection.
// A non-positive ttlDays removes expiry entirely.
func (m *MongoDB) SetExportsTTL(ctx context.Context, ttlDays int) error {
	if _, err := m.Exports.Indexes().DropOne(ctx, exportsTTLIndex); err != nil && !isIndexNotFound(err) {
		return err
	}
	if ttlDays <= 0 {
		return nil
	}

	ttlIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().
			SetName(exportsTTLIndex).
			SetExpireAfterSeconds(int32(ttlDays * 24 * 60 * 60)),
	}
	_, err := m.Exports.Indexes().CreateOne(ctx, ttlIndex)
	return err
}

// isIndexNotFound reports whether err is the server's IndexNotFound (27)
// or the "ns not found" (26) error returned when the collection is absent.
func isIndexNotFound(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 27 || cmdErr.Code == 26
	}
	return false
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the server with a short timeout.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
