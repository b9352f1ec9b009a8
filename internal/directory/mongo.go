package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/counselhub/counsel-api/internal/models"
)

const opTimeout = 5 * time.Second

type mongoDirectory struct {
	coll *mongo.Collection
}

// NewMongoDirectory builds a Directory backed by the "consultants" collection.
func NewMongoDirectory(db *mongo.Database) Directory {
	return &mongoDirectory{coll: db.Collection("consultants")}
}

func (d *mongoDirectory) Create(ctx context.Context, fullName, email, specialty string) (*models.Consultant, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	consultant := models.Consultant{
		ID:        uuid.New().String(),
		FullName:  fullName,
		Email:     email,
		Specialty: specialty,
	}
	if _, err := d.coll.InsertOne(ctx, consultant); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &consultant, nil
}

func (d *mongoDirectory) GetByID(ctx context.Context, id string) (*models.Consultant, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var consultant models.Consultant
	err := d.coll.FindOne(ctx, bson.M{"id": id}).Decode(&consultant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &consultant, nil
}

func (d *mongoDirectory) List(ctx context.Context) ([]models.Consultant, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := d.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var consultants []models.Consultant
	if err := cursor.All(ctx, &consultants); err != nil {
		return nil, err
	}
	return consultants, nil
}

func (d *mongoDirectory) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := d.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *mongoDirectory) Exists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	count, err := d.coll.CountDocuments(ctx, bson.M{"id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureIndexes creates the unique ID and email indexes on consultants.
func (d *mongoDirectory) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_email"),
		},
	}

	if _, err := d.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create consultant indexes: %w", err)
	}
	return nil
}
