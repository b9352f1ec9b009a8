package registry

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the slot queries rely on. The unique
// window index doubles as the guard against two slots occupying the same
// consultant/time cell.
func (r *mongoRegistry) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "consultantId", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetName("consultant_start_idx"),
		},
		{
			Keys: bson.D{
				{Key: "consultantId", Value: 1},
				{Key: "startTime", Value: 1},
				{Key: "endTime", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("unique_consultant_window"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create slot indexes: %w", err)
	}
	return nil
}

// IndexEnsurer is satisfied by the Mongo-backed registry; main runs it once
// at startup.
type IndexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}
