package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExportDocument is the stored form of one order export.
type ExportDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp        time.Time          `bson:"timestamp"`
	OrderID          string             `bson:"order_id"`
	RequestID        string             `bson:"request_id,omitempty"`
	Channel          string             `bson:"channel"`
	Filter           string             `bson:"filter,omitempty"`
	DistinctProducts int                `bson:"distinct_products"`
	TotalItems       int                `bson:"total_items"`
	TotalVolume      float64            `bson:"total_volume"`
	TotalCost        string             `bson:"total_cost"`
	Target           string             `bson:"target,omitempty"`
}

// ExportQueryOptions filters export log queries. Zero values match everything.
type ExportQueryOptions struct {
	OrderID string
	Channel string
	Since   *time.Time
	Limit   int
	Skip    int
}

func (o ExportQueryOptions) filter() bson.M {
	filter := bson.M{}
	if o.OrderID != "" {
		filter["order_id"] = o.OrderID
	}
	if o.Channel != "" {
		filter["channel"] = o.Channel
	}
	if o.Since != nil {
		filter["timestamp"] = bson.M{"$gte": *o.Since}
	}
	return filter
}

// ExportsRepository reads and writes the exports collection.
type ExportsRepository struct {
	collection *mongo.Collection
}

// NewExportsRepository creates a new exports repository.
func NewExportsRepository(db *MongoDB) *ExportsRepository {
	return &ExportsRepository{collection: db.Exports}
}

// Create inserts one export document, assigning an ID and timestamp if unset.
func (r *ExportsRepository) Create(ctx context.Context, doc *ExportDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.Timestamp.IsZero() {
		doc.Timestamp = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// Query returns matching exports, newest first.
func (r *ExportsRepository) Query(ctx context.Context, opts ExportQueryOptions) ([]*ExportDocument, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := make([]*ExportDocument, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Count returns the number of matching exports. Limit and Skip are ignored.
func (r *ExportsRepository) Count(ctx context.Context, opts ExportQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}
