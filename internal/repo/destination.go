package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
)

// DestinationRepo defines the storage operations for Destination records.
type DestinationRepo interface {
	Create(ctx context.Context, d domain.Destination) (domain.Destination, error)

	// GetByID returns domain.ErrNotFound if no destination with that id exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)

	List(ctx context.Context) ([]domain.Destination, error)

	// Update returns domain.ErrNotFound if no destination with that id exists.
	Update(ctx context.Context, d domain.Destination) (domain.Destination, error)

	// Delete returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByCity returns destinations whose city matches, case-insensitively.
	ListByCity(ctx context.Context, city string) ([]domain.Destination, error)

	// ListByCountry returns destinations whose country matches, case-insensitively.
	ListByCountry(ctx context.Context, country string) ([]domain.Destination, error)
}

type memDestinationRepo struct {
	store *memStore[domain.Destination]
}

// NewDestinationRepo constructs an empty in-memory DestinationRepo.
func NewDestinationRepo() DestinationRepo {
	return &memDestinationRepo{store: newMemStore[domain.Destination]()}
}

func (r *memDestinationRepo) Create(_ context.Context, d domain.Destination) (domain.Destination, error) {
	r.store.put(d.ID, d)
	return d, nil
}

func (r *memDestinationRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Destination, error) {
	d, ok := r.store.get(id)
	if !ok {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: destination %s: %w", id, domain.ErrNotFound)
	}
	return d, nil
}

func (r *memDestinationRepo) List(_ context.Context) ([]domain.Destination, error) {
	return r.store.all(), nil
}

func (r *memDestinationRepo) Update(_ context.Context, d domain.Destination) (domain.Destination, error) {
	if !r.store.replace(d.ID, d) {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Update: destination %s: %w", d.ID, domain.ErrNotFound)
	}
	return d, nil
}

func (r *memDestinationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if !r.store.delete(id) {
		return fmt.Errorf("repo.DestinationRepo.Delete: destination %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *memDestinationRepo) ListByCity(_ context.Context, city string) ([]domain.Destination, error) {
	var out []domain.Destination
	for _, d := range r.store.all() {
		if strings.EqualFold(d.City, city) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memDestinationRepo) ListByCountry(_ context.Context, country string) ([]domain.Destination, error) {
	var out []domain.Destination
	for _, d := range r.store.all() {
		if strings.EqualFold(d.Country, country) {
			out = append(out, d)
		}
	}
	return out, nil
}
