package registry

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/counselhub/counsel-api/internal/models"
)

const opTimeout = 5 * time.Second

type mongoRegistry struct {
	coll *mongo.Collection
}

// NewMongoRegistry builds a Registry backed by the "slots" collection of db.
func NewMongoRegistry(db *mongo.Database) Registry {
	return &mongoRegistry{coll: db.Collection("slots")}
}

func (r *mongoRegistry) Create(ctx context.Context, consultantID string, start, end time.Time, status models.SlotStatus) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	slot := models.Slot{
		ID:           uuid.New().String(),
		ConsultantID: consultantID,
		StartTime:    start.UTC(),
		EndTime:      end.UTC(),
		Status:       status,
	}
	if !slot.ValidRange() {
		return nil, ErrInvalidRange
	}

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, err
	}
	return &slot, nil
}

func (r *mongoRegistry) Update(ctx context.Context, id string, patch SlotPatch) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if patch.StartTime != nil {
		next.StartTime = patch.StartTime.UTC()
	}
	if patch.EndTime != nil {
		next.EndTime = patch.EndTime.UTC()
	}
	if !next.ValidRange() {
		return nil, ErrInvalidRange
	}

	update := bson.M{"$set": bson.M{"startTime": next.StartTime, "endTime": next.EndTime}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Slot
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *mongoRegistry) SetStatus(ctx context.Context, id string, status models.SlotStatus) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Slot
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *mongoRegistry) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRegistry) GetByID(ctx context.Context, id string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var slot models.Slot
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *mongoRegistry) ListByConsultant(ctx context.Context, consultantID string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"consultantId": consultantID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mongoRegistry) FindSlot(ctx context.Context, consultantID string, day time.Time, hour int) (*models.Slot, error) {
	slots, err := r.ListByConsultant(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	if slot, ok := MatchSlot(slots, day, hour); ok {
		return &slot, nil
	}
	return nil, ErrNotFound
}
