package utils

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultDatabaseName = "insta"

	connectTimeout = 10 * time.Second
)

// GetDBConnection connects to the MongoDB deployment addressed by
// MONGO_URI and returns a handle to the application database
// (MONGO_DB, default "insta"). The connection is verified with a ping
// before it is handed out.
func GetDBConnection() (*mongo.Database, error) {
	uri := os.Getenv("MONGO_URI")
	if len(uri) == 0 {
		return nil, errors.New("MONGO_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "ping mongodb")
	}

	name := os.Getenv("MONGO_DB")
	if len(name) == 0 {
		name = defaultDatabaseName
	}
	return client.Database(name), nil
}
