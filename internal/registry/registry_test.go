package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counselhub/counsel-api/internal/models"
)

var (
	monday8  = time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	monday9  = time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	monday10 = time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
)

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	slot, err := reg.Create(ctx, "C1", monday8, monday9, models.SlotStatusAvailable)
	require.NoError(t, err)
	assert.NotEmpty(t, slot.ID)
	assert.Equal(t, "C1", slot.ConsultantID)
	assert.Equal(t, models.SlotStatusAvailable, slot.Status)
	assert.True(t, slot.ValidRange())
}

func TestCreateRejectsInvertedRange(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	_, err := reg.Create(ctx, "C1", monday9, monday8, models.SlotStatusAvailable)
	assert.ErrorIs(t, err, ErrInvalidRange)

	// The failed create must leave the store unchanged.
	slots, err := reg.ListByConsultant(ctx, "C1")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCreateRejectsDuplicateWindow(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	_, err := reg.Create(ctx, "C1", monday8, monday9, models.SlotStatusAvailable)
	require.NoError(t, err)

	_, err = reg.Create(ctx, "C1", monday8, monday9, models.SlotStatusAvailable)
	assert.ErrorIs(t, err, ErrDuplicateSlot)

	// Same window for a different consultant is fine.
	_, err = reg.Create(ctx, "C2", monday8, monday9, models.SlotStatusAvailable)
	assert.NoError(t, err)
}

func TestUpdateTimeWindow(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	slot, err := reg.Create(ctx, "C1", monday8, monday9, models.SlotStatusAvailable)
	require.NoError(t, err)

	updated, err := reg.Update(ctx, slot.ID, SlotPatch{EndTime: &monday10})
	require.NoError(t, err)
	assert.True(t, updated.EndTime.Equal(monday10))
	assert.True(t, updated.StartTime.Equal(monday8))

	_, err = reg.Update(ctx, slot.ID, SlotPatch{StartTime: &monday10})
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Failed update leaves the slot untouched.
	got, err := reg.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.True(t, got.StartTime.Equal(monday8))

	_, err = reg.Update(ctx, "missing", SlotPatch{EndTime: &monday10})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAllowedWhileBooked(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	slot, err := reg.Create(ctx, "C1", monday8, monday9, models.SlotStatusBooked)
	require.NoError(t, err)

	// Time edits are permitted regardless of status.
	updated, err := reg.Update(ctx, slot.ID, SlotPatch{EndTime: &monday10})
	require.NoError(t, err)
	assert.Equal(t, models.SlotStatusBooked, updated.Status)
}

func TestSetStatusEveryTransition(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	slot, err := reg.Create(ctx, "C1", monday8, monday9, models.SlotStatusAvailable)
	require.NoError(t, err)

	// No transition graph: every status is reachable from every other.
	statuses := []models.SlotStatus{
		models.SlotStatusBooked,
		models.SlotStatusAvailable,
		models.SlotStatusCancelled,
		models.SlotStatusDeleted,
		models.SlotStatusBooked,
		models.SlotStatusAvailable,
	}
	for _, status := range statuses {
		updated, err := reg.SetStatus(ctx, slot.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)

		got, err := reg.GetByID(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}
}

func TestDeleteRemovesPermanently(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	slot, err := reg.Create(ctx, "C1", monday8, monday9, models.SlotStatusAvailable)
	require.NoError(t, err)

	require.NoError(t, reg.Delete(ctx, slot.ID))

	_, err = reg.GetByID(ctx, slot.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = reg.Update(ctx, slot.ID, SlotPatch{EndTime: &monday10})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = reg.SetStatus(ctx, slot.ID, models.SlotStatusBooked)
	assert.ErrorIs(t, err, ErrNotFound)

	// Second delete fails with NotFound rather than being a silent no-op.
	assert.ErrorIs(t, reg.Delete(ctx, slot.ID), ErrNotFound)
}

func TestListByConsultantIsolation(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	s1, err := reg.Create(ctx, "C1", monday8, monday9, models.SlotStatusAvailable)
	require.NoError(t, err)
	s2, err := reg.Create(ctx, "C1", monday9, monday10, models.SlotStatusBooked)
	require.NoError(t, err)
	_, err = reg.Create(ctx, "C2", monday8, monday9, models.SlotStatusAvailable)
	require.NoError(t, err)

	slots, err := reg.ListByConsultant(ctx, "C1")
	require.NoError(t, err)
	require.Len(t, slots, 2)

	ids := []string{slots[0].ID, slots[1].ID}
	assert.ElementsMatch(t, []string{s1.ID, s2.ID}, ids)
}

// The concrete walkthrough: create a Monday 08:00 slot, find it in the grid,
// book it, delete it, and watch the cell empty out.
func TestSlotLifecycleThroughGrid(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC) // a Monday

	created, err := reg.Create(ctx, "C1", monday8, monday9, models.SlotStatusAvailable)
	require.NoError(t, err)
	require.Equal(t, time.Monday, created.StartTime.Weekday())

	found, err := reg.FindSlot(ctx, "C1", day, 8)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, models.SlotStatusAvailable, found.Status)

	_, err = reg.SetStatus(ctx, created.ID, models.SlotStatusBooked)
	require.NoError(t, err)

	found, err = reg.FindSlot(ctx, "C1", day, 8)
	require.NoError(t, err)
	assert.Equal(t, models.SlotStatusBooked, found.Status)

	require.NoError(t, reg.Delete(ctx, created.ID))

	_, err = reg.FindSlot(ctx, "C1", day, 8)
	assert.ErrorIs(t, err, ErrNotFound)
}
