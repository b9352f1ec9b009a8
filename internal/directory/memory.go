package directory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/counselhub/counsel-api/internal/models"
)

type memoryDirectory struct {
	mu          sync.Mutex
	consultants map[string]models.Consultant
}

// NewMemoryDirectory builds an empty in-memory Directory for tests and local
// runs without Mongo.
func NewMemoryDirectory() Directory {
	return &memoryDirectory{consultants: make(map[string]models.Consultant)}
}

func (d *memoryDirectory) Create(_ context.Context, fullName, email, specialty string) (*models.Consultant, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.consultants {
		if existing.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	consultant := models.Consultant{
		ID:        uuid.New().String(),
		FullName:  fullName,
		Email:     email,
		Specialty: specialty,
	}
	d.consultants[consultant.ID] = consultant
	return &consultant, nil
}

func (d *memoryDirectory) GetByID(_ context.Context, id string) (*models.Consultant, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	consultant, ok := d.consultants[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &consultant, nil
}

func (d *memoryDirectory) List(_ context.Context) ([]models.Consultant, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	consultants := make([]models.Consultant, 0, len(d.consultants))
	for _, consultant := range d.consultants {
		consultants = append(consultants, consultant)
	}
	return consultants, nil
}

func (d *memoryDirectory) Delete(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.consultants[id]; !ok {
		return ErrNotFound
	}
	delete(d.consultants, id)
	return nil
}

func (d *memoryDirectory) Exists(_ context.Context, id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.consultants[id]
	return ok, nil
}
