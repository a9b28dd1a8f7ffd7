package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
)

// PersonRepo defines the storage operations for Person records.
// The service layer depends on this interface, not the concrete store,
// which allows unit tests to substitute a mock.
type PersonRepo interface {
	// Create stores a new person and returns the stored record.
	Create(ctx context.Context, p domain.Person) (domain.Person, error)

	// GetByID retrieves a person by id.
	// Returns domain.ErrNotFound if no person with that id exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Person, error)

	// List returns a snapshot of all people; order is not meaningful.
	List(ctx context.Context) ([]domain.Person, error)

	// Update overwrites an existing person record.
	// Returns domain.ErrNotFound if no person with that id exists.
	Update(ctx context.Context, p domain.Person) (domain.Person, error)

	// Delete removes a person by id. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByIdentification finds a person by their identification string.
	// Returns domain.ErrNotFound when nobody matches.
	GetByIdentification(ctx context.Context, identification string) (domain.Person, error)
}

type memPersonRepo struct {
	store *memStore[domain.Person]
}

// NewPersonRepo constructs an empty in-memory PersonRepo.
func NewPersonRepo() PersonRepo {
	return &memPersonRepo{store: newMemStore[domain.Person]()}
}

func (r *memPersonRepo) Create(_ context.Context, p domain.Person) (domain.Person, error) {
	r.store.put(p.ID, p)
	return p, nil
}

func (r *memPersonRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Person, error) {
	p, ok := r.store.get(id)
	if !ok {
		return domain.Person{}, fmt.Errorf("repo.PersonRepo.GetByID: person %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (r *memPersonRepo) List(_ context.Context) ([]domain.Person, error) {
	return r.store.all(), nil
}

func (r *memPersonRepo) Update(_ context.Context, p domain.Person) (domain.Person, error) {
	if !r.store.replace(p.ID, p) {
		return domain.Person{}, fmt.Errorf("repo.PersonRepo.Update: person %s: %w", p.ID, domain.ErrNotFound)
	}
	return p, nil
}

func (r *memPersonRepo) Delete(_ context.Context, id uuid.UUID) error {
	if !r.store.delete(id) {
		return fmt.Errorf("repo.PersonRepo.Delete: person %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *memPersonRepo) GetByIdentification(_ context.Context, identification string) (domain.Person, error) {
	for _, p := range r.store.all() {
		if p.Identification == identification {
			return p, nil
		}
	}
	return domain.Person{}, fmt.Errorf("repo.PersonRepo.GetByIdentification: identification %q: %w", identification, domain.ErrNotFound)
}
