package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/tahsin/scholarfolio/internal/pkg/logger"
)

// Mongo bundles the connected client and the selected database handle.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect opens the MongoDB connection pool and verifies it with a ping.
func Connect(ctx context.Context, uri, database string, poolSize uint64) (*Mongo, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(poolSize)

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info().Str("database", database).Msg("Connected to MongoDB")

	return &Mongo{
		Client:   client,
		Database: client.Database(database),
	}, nil
}

// Close disconnects the client. Safe to call on a nil receiver.
func (m *Mongo) Close() {
	if m == nil || m.Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := m.Client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("Error disconnecting from MongoDB")
	}
}

// Collection returns a handle in the selected database.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}
