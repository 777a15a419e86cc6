package auditlog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voxcal/config"
	"voxcal/database"
)

const collectionName = "tool_calls"

// MongoAuditLogRepo is the MongoDB implementation of Repository.
type MongoAuditLogRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditLogRepo returns a repository backed by the global Mongo client.
func NewMongoAuditLogRepo() *MongoAuditLogRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoAuditLogRepo{coll: db.Collection(collectionName)}
}

func (r *MongoAuditLogRepo) Insert(ctx context.Context, rec Record) error {
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to insert tool-call record: %w", err)
	}
	return nil
}

func (r *MongoAuditLogRepo) ListRecent(ctx context.Context, limit int64) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query tool-call records: %w", err)
	}
	defer cur.Close(ctx)

	var records []Record
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode tool-call records: %w", err)
	}
	return records, nil
}
