// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/pulseboard/internal/app/store/docstore"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and wraps the database in
// the document-store view used by the query layer.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Docs:          docstore.NewMongo(db),
	}, nil
}

// EnsureSchema creates the indexes the dashboard queries sort on. The
// collections themselves belong to the upstream application; index
// creation is idempotent and safe to run against existing data.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	indexes := []struct {
		collection string
		field      string
	}{
		{appCfg.UsersCollection, "createdAt"},
		{appCfg.EventsCollection, "timestamp"},
		{appCfg.TransactionsCollection, "timestamp"},
	}

	for _, ix := range indexes {
		if ix.collection == "" {
			continue
		}
		_, err := deps.MongoDatabase.Collection(ix.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: ix.field, Value: -1}},
		})
		if err != nil {
			logger.Warn("index creation failed",
				zap.String("collection", ix.collection),
				zap.String("field", ix.field),
				zap.Error(err))
		}
	}
	return nil
}
