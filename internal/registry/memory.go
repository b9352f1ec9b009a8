package registry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/counselhub/counsel-api/internal/models"
)

// memoryRegistry keeps slots in a plain map. Used by tests and local runs
// without a Mongo instance; mirrors the Mongo implementation's semantics,
// including the unique (consultant, startTime, endTime) window.
type memoryRegistry struct {
	mu    sync.Mutex
	slots map[string]models.Slot
}

// NewMemoryRegistry builds an empty in-memory Registry.
func NewMemoryRegistry() Registry {
	return &memoryRegistry{slots: make(map[string]models.Slot)}
}

func (r *memoryRegistry) Create(_ context.Context, consultantID string, start, end time.Time, status models.SlotStatus) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

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
	for _, existing := range r.slots {
		if existing.ConsultantID == consultantID &&
			existing.StartTime.Equal(slot.StartTime) &&
			existing.EndTime.Equal(slot.EndTime) {
			return nil, ErrDuplicateSlot
		}
	}

	r.slots[slot.ID] = slot
	return &slot, nil
}

func (r *memoryRegistry) Update(_ context.Context, id string, patch SlotPatch) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[id]
	if !ok {
		return nil, ErrNotFound
	}

	next := slot
	if patch.StartTime != nil {
		next.StartTime = patch.StartTime.UTC()
	}
	if patch.EndTime != nil {
		next.EndTime = patch.EndTime.UTC()
	}
	if !next.ValidRange() {
		return nil, ErrInvalidRange
	}

	r.slots[id] = next
	return &next, nil
}

func (r *memoryRegistry) SetStatus(_ context.Context, id string, status models.SlotStatus) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[id]
	if !ok {
		return nil, ErrNotFound
	}
	slot.Status = status
	r.slots[id] = slot
	return &slot, nil
}

func (r *memoryRegistry) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.slots[id]; !ok {
		return ErrNotFound
	}
	delete(r.slots, id)
	return nil
}

func (r *memoryRegistry) GetByID(_ context.Context, id string) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &slot, nil
}

func (r *memoryRegistry) ListByConsultant(_ context.Context, consultantID string) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var slots []models.Slot
	for _, slot := range r.slots {
		if slot.ConsultantID == consultantID {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

func (r *memoryRegistry) FindSlot(ctx context.Context, consultantID string, day time.Time, hour int) (*models.Slot, error) {
	slots, err := r.ListByConsultant(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	if slot, ok := MatchSlot(slots, day, hour); ok {
		return &slot, nil
	}
	return nil, ErrNotFound
}
