package testutil

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type TestDB struct {
	Client  *mongo.Client
	DB      *mongo.Database
	Cleanup func() error
}

// SetupTestDB connects to the Mongo instance named by TEST_MONGO_URI and
// hands back a uniquely named database, so parallel tests never share
// collections. Cleanup drops the database and disconnects.
func SetupTestDB() (*TestDB, error) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		return nil, fmt.Errorf("TEST_MONGO_URI env-var not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to %q: %w", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping %q: %w", uri, err)
	}

	dbName := fmt.Sprintf("videoproc_test_%d", time.Now().UnixNano())
	db := client.Database(dbName)

	cleanup := func() error {
		if err := db.Drop(context.Background()); err != nil {
			_ = client.Disconnect(context.Background())
			return fmt.Errorf("drop database %q: %w", dbName, err)
		}
		return client.Disconnect(context.Background())
	}

	return &TestDB{Client: client, DB: db, Cleanup: cleanup}, nil
}
