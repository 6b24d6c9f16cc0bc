package testutil

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoContainerInfo struct {
	URI     string
	Cleanup func()
}

func StartMongoContainer() (*MongoContainerInfo, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("connect to docker: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("run mongo: %w", err)
	}

	var uri string
	if err := pool.Retry(func() error {
		uri = fmt.Sprintf("mongodb://localhost:%s", resource.GetPort("27017/tcp"))
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return err
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()
		return client.Ping(ctx, readpref.Primary())
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("mongo did not become ready: %w", err)
	}

	ci := &MongoContainerInfo{
		URI: uri,
		Cleanup: func() {
			if err := pool.Purge(resource); err != nil {
				log.Printf("could not purge mongo container: %s", err)
			}
		},
	}
	return ci, nil
}
