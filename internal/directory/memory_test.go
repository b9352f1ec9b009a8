package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryExists(t *testing.T) {
	d := NewMemoryDirectory()
	ctx := context.Background()

	ok, err := d.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	consultant, err := d.Create(ctx, "Maya Okafor", "maya@counselhub.example", "family therapy")
	require.NoError(t, err)

	ok, err = d.Exists(ctx, consultant.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, d.Delete(ctx, consultant.ID))
	ok, err = d.Exists(ctx, consultant.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDirectoryDuplicateEmail(t *testing.T) {
	d := NewMemoryDirectory()
	ctx := context.Background()

	_, err := d.Create(ctx, "Maya Okafor", "maya@counselhub.example", "family therapy")
	require.NoError(t, err)

	_, err = d.Create(ctx, "Someone Else", "maya@counselhub.example", "CBT")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}
