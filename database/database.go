package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

var (
	DB     *mongo.Database
	client *mongo.Client
	mu     sync.Mutex
)

var ErrNoURI = errors.New("MONGODB_URI is not configured")

// ConnectMongo opens the pooled client on first call; repeated calls
// return the same client. Callers treat a failure here as fatal.
func ConnectMongo(uri string, dbName string) (*mongo.Client, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		return client, nil
	}

	if uri == "" {
		return nil, ErrNoURI
	}

	opts := options.Client().ApplyURI(uri)

	c, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	client = c
	DB = c.Database(dbName)
	return client, nil
}
