package persistence

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewMongoDb connects to MongoDB and returns a handle on the configured
// database. Callers decide how to degrade when the connection fails.
func NewMongoDb(host, port, user, password, name string) (*mongo.Database, error) {
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "27017"
	}
	if name == "" {
		name = "vibes"
	}

	uri := fmt.Sprintf("mongodb://%s:%s", host, port)
	if user != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%s", user, password, host, port)
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	return client.Database(name), nil
}
