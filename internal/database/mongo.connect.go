// Package database connects to MongoDB and prepares the collections and
// indexes the service relies on.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/cobreklo/portafolio-api/internal/logger"
)

// Connect opens a pooled client and verifies the connection with a ping.
// A failed ping is fatal for the caller; the service never starts without
// a reachable database.
func Connect(uri string) (*mongo.Client, error) {
	log := logger.GetLogger("database")

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(100).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Second).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("could not connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("could not ping MongoDB: %w", err)
	}

	log.Info("Connected to MongoDB")
	return client, nil
}

// Disconnect closes the client, logging instead of returning the error
// because it runs during shutdown.
func Disconnect(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.GetLogger("database").WithError(err).Error("Error disconnecting from MongoDB")
	}
}
