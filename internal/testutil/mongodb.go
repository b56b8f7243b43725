//go:build integration

// Package testutil starts throwaway MongoDB containers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// mongoImage can be overridden with TEST_MONGO_IMAGE.
const mongoImage = "mongo:7.0"

// MongoDBContainer wraps a running MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a MongoDB container and returns its connection URI.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	image := mongoImage
	if v := os.Getenv("TEST_MONGO_IMAGE"); v != "" {
		image = v
	}

	container, err := mongodb.Run(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
	sharedMu   sync.RWMutex
)

// GetSharedMongoDB starts the package-wide container on first use.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		c, err := SetupMongoDB(ctx)
		sharedMu.Lock()
		shared, sharedErr = c, err
		sharedMu.Unlock()
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return shared, sharedErr
}

// SetupTestMainWithMongoDB runs m against a shared container and tears it down.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "testutil: %v\n", err)
		return 1
	}

	code := m.Run()

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if err := shared.Cleanup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "testutil: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the shared container URI. It panics when
// called before SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if shared == nil {
		panic("testutil: shared mongodb container not started")
	}
	return shared.URI
}

// SanitizeDBName turns a test name into a unique, valid database name.
func SanitizeDBName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$':
			return '_'
		}
		return r
	}, testName)

	if len(name) > 48 {
		name = name[:48]
	}
	return name + "_" + strconv.FormatInt(time.Now().UnixNano()%1000000, 10)
}
