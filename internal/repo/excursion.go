package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
)

// ExcursionRepo defines the storage operations for Excursion records.
type ExcursionRepo interface {
	Create(ctx context.Context, e domain.Excursion) (domain.Excursion, error)

	// GetByID returns domain.ErrNotFound if no excursion with that id exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Excursion, error)

	List(ctx context.Context) ([]domain.Excursion, error)

	// Update returns domain.ErrNotFound if no excursion with that id exists.
	Update(ctx context.Context, e domain.Excursion) (domain.Excursion, error)

	// Delete returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByPerson returns the excursions booked by one person.
	ListByPerson(ctx context.Context, personID uuid.UUID) ([]domain.Excursion, error)

	// ListByCity returns excursions in a city, case-insensitively.
	ListByCity(ctx context.Context, city string) ([]domain.Excursion, error)

	// SearchByAttraction returns excursions whose attraction name contains
	// the query, case-insensitively.
	SearchByAttraction(ctx context.Context, query string) ([]domain.Excursion, error)
}

type memExcursionRepo struct {
	store *memStore[domain.Excursion]
}

// NewExcursionRepo constructs an empty in-memory ExcursionRepo.
func NewExcursionRepo() ExcursionRepo {
	return &memExcursionRepo{store: newMemStore[domain.Excursion]()}
}

func (r *memExcursionRepo) Create(_ context.Context, e domain.Excursion) (domain.Excursion, error) {
	r.store.put(e.ID, e)
	return e, nil
}

func (r *memExcursionRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Excursion, error) {
	e, ok := r.store.get(id)
	if !ok {
		return domain.Excursion{}, fmt.Errorf("repo.ExcursionRepo.GetByID: excursion %s: %w", id, domain.ErrNotFound)
	}
	return e, nil
}

func (r *memExcursionRepo) List(_ context.Context) ([]domain.Excursion, error) {
	return r.store.all(), nil
}

func (r *memExcursionRepo) Update(_ context.Context, e domain.Excursion) (domain.Excursion, error) {
	if !r.store.replace(e.ID, e) {
		return domain.Excursion{}, fmt.Errorf("repo.ExcursionRepo.Update: excursion %s: %w", e.ID, domain.ErrNotFound)
	}
	return e, nil
}

func (r *memExcursionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if !r.store.delete(id) {
		return fmt.Errorf("repo.ExcursionRepo.Delete: excursion %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *memExcursionRepo) ListByPerson(_ context.Context, personID uuid.UUID) ([]domain.Excursion, error) {
	var out []domain.Excursion
	for _, e := range r.store.all() {
		if e.PersonID == personID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memExcursionRepo) ListByCity(_ context.Context, city string) ([]domain.Excursion, error) {
	var out []domain.Excursion
	for _, e := range r.store.all() {
		if strings.EqualFold(e.City, city) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memExcursionRepo) SearchByAttraction(_ context.Context, query string) ([]domain.Excursion, error) {
	q := strings.ToLower(query)
	var out []domain.Excursion
	for _, e := range r.store.all() {
		if strings.Contains(strings.ToLower(e.Attraction), q) {
			out = append(out, e)
		}
	}
	return out, nil
}
