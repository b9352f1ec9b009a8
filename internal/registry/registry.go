package registry

import (
	"context"
	"errors"
	"time"

	"github.com/counselhub/counsel-api/internal/models"
)

var (
	// ErrNotFound means the referenced slot ID does not exist.
	ErrNotFound = errors.New("slot not found")
	// ErrInvalidRange means startTime >= endTime on create or update.
	ErrInvalidRange = errors.New("startTime must be before endTime")
	// ErrDuplicateSlot means a slot with the same consultant and time window
	// already exists.
	ErrDuplicateSlot = errors.New("slot already exists for this consultant and time window")
)

// SlotPatch carries the optional fields of an update. Nil fields are left
// untouched.
type SlotPatch struct {
	StartTime *time.Time
	EndTime   *time.Time
}

// Registry owns the set of bookable slots. Status assignment is deliberately
// unguarded: any status may overwrite any other, matching how admins flip
// slots directly (e.g. reverting booked back to available after an
// out-of-band cancellation). Callers wanting a stricter lifecycle must layer
// it on top.
type Registry interface {
	// Create inserts a new slot and returns it with a freshly assigned ID.
	// Fails with ErrInvalidRange when the window is not ordered, and with
	// ErrDuplicateSlot when the (consultant, startTime, endTime) window is
	// already taken.
	Create(ctx context.Context, consultantID string, start, end time.Time, status models.SlotStatus) (*models.Slot, error)

	// Update edits the time window of an existing slot. Editing is allowed
	// regardless of the current status, including booked slots.
	Update(ctx context.Context, id string, patch SlotPatch) (*models.Slot, error)

	// SetStatus replaces the status of an existing slot.
	SetStatus(ctx context.Context, id string, status models.SlotStatus) (*models.Slot, error)

	// Delete removes the slot permanently. Deleting an absent ID fails with
	// ErrNotFound; a second delete of the same ID therefore also fails.
	Delete(ctx context.Context, id string) error

	// GetByID fetches a single slot.
	GetByID(ctx context.Context, id string) (*models.Slot, error)

	// ListByConsultant returns every slot of the consultant, any status,
	// order unspecified.
	ListByConsultant(ctx context.Context, consultantID string) ([]models.Slot, error)

	// FindSlot returns the slot whose start falls on the given calendar day
	// at the given hour, or ErrNotFound when the cell is empty. A pure
	// projection over ListByConsultant; with duplicate slots in a cell the
	// first match wins.
	FindSlot(ctx context.Context, consultantID string, day time.Time, hour int) (*models.Slot, error)
}
