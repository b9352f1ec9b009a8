package directory

import (
	"context"
	"errors"

	"github.com/counselhub/counsel-api/internal/models"
)

var (
	// ErrNotFound means the referenced consultant ID does not exist.
	ErrNotFound = errors.New("consultant not found")
	// ErrDuplicateEmail means a consultant with the same email already exists.
	ErrDuplicateEmail = errors.New("a consultant with this email already exists")
)

// Directory is the consultant-existence collaborator consumed by the slot
// handlers. Slot creation checks Exists before touching the registry; the
// registry itself never looks up consultant identity.
type Directory interface {
	Create(ctx context.Context, fullName, email, specialty string) (*models.Consultant, error)
	GetByID(ctx context.Context, id string) (*models.Consultant, error)
	List(ctx context.Context) ([]models.Consultant, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
