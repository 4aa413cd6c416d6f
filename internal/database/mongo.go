package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type Config struct {
	URI  string
	Name string
}

// ConnectDB opens a client, pings the primary and returns the configured
// database. Any failure is fatal: the process cannot serve without storage.
func ConnectDB(cfg *Config, log *zap.Logger) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		log.Fatal("failed to connect to mongodb", zap.Error(err))
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("mongodb ping failed", zap.Error(err))
	}

	log.Info("MongoDB connected", zap.String("database", cfg.Name))
	return client.Database(cfg.Name)
}

func CloseDB(db *mongo.Database, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Client().Disconnect(ctx); err != nil {
		log.Error("failed to disconnect from mongodb", zap.Error(err))
		return
	}
	log.Info("MongoDB connection closed")
}
