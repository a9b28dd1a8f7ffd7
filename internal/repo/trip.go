package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
)

// TripRepo defines the storage operations for Trip records.
type TripRepo interface {
	Create(ctx context.Context, t domain.Trip) (domain.Trip, error)

	// GetByID returns domain.ErrNotFound if no trip with that id exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	List(ctx context.Context) ([]domain.Trip, error)

	// Update returns domain.ErrNotFound if no trip with that id exists.
	Update(ctx context.Context, t domain.Trip) (domain.Trip, error)

	// Delete returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}

type memTripRepo struct {
	store *memStore[domain.Trip]
}

// NewTripRepo constructs an empty in-memory TripRepo.
func NewTripRepo() TripRepo {
	return &memTripRepo{store: newMemStore[domain.Trip]()}
}

func (r *memTripRepo) Create(_ context.Context, t domain.Trip) (domain.Trip, error) {
	r.store.put(t.ID, t)
	return t, nil
}

func (r *memTripRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	t, ok := r.store.get(id)
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: trip %s: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

func (r *memTripRepo) List(_ context.Context) ([]domain.Trip, error) {
	return r.store.all(), nil
}

func (r *memTripRepo) Update(_ context.Context, t domain.Trip) (domain.Trip, error) {
	if !r.store.replace(t.ID, t) {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: trip %s: %w", t.ID, domain.ErrNotFound)
	}
	return t, nil
}

func (r *memTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	if !r.store.delete(id) {
		return fmt.Errorf("repo.TripRepo.Delete: trip %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
