package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Database holds the Mongo client and the database the ledger lives in.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// New connects to Mongo and verifies connectivity with a ping.
// It returns an error if connecting or pinging fails.
func New(uri, database string) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// verify connectivity
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// disconnect before returning the ping error
		if dErr := client.Disconnect(context.Background()); dErr != nil {
			return nil, dErr
		}
		return nil, err
	}

	return &Database{Client: client, DB: client.Database(database)}, nil
}

func (d *Database) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.Client.Disconnect(ctx)
}
