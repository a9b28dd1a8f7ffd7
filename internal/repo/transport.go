package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
)

// TransportTypeRepo defines the storage operations for TransportType records.
type TransportTypeRepo interface {
	Create(ctx context.Context, t domain.TransportType) (domain.TransportType, error)

	// GetByID returns domain.ErrNotFound if no transport type with that id exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TransportType, error)

	List(ctx context.Context) ([]domain.TransportType, error)

	// Update returns domain.ErrNotFound if no transport type with that id exists.
	Update(ctx context.Context, t domain.TransportType) (domain.TransportType, error)

	// Delete returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByCompany returns the types offered by one company.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.TransportType, error)
}

type memTransportTypeRepo struct {
	store *memStore[domain.TransportType]
}

// NewTransportTypeRepo constructs an empty in-memory TransportTypeRepo.
func NewTransportTypeRepo() TransportTypeRepo {
	return &memTransportTypeRepo{store: newMemStore[domain.TransportType]()}
}

func (r *memTransportTypeRepo) Create(_ context.Context, t domain.TransportType) (domain.TransportType, error) {
	r.store.put(t.ID, t)
	return t, nil
}

func (r *memTransportTypeRepo) GetByID(_ context.Context, id uuid.UUID) (domain.TransportType, error) {
	t, ok := r.store.get(id)
	if !ok {
		return domain.TransportType{}, fmt.Errorf("repo.TransportTypeRepo.GetByID: transport type %s: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

func (r *memTransportTypeRepo) List(_ context.Context) ([]domain.TransportType, error) {
	return r.store.all(), nil
}

func (r *memTransportTypeRepo) Update(_ context.Context, t domain.TransportType) (domain.TransportType, error) {
	if !r.store.replace(t.ID, t) {
		return domain.TransportType{}, fmt.Errorf("repo.TransportTypeRepo.Update: transport type %s: %w", t.ID, domain.ErrNotFound)
	}
	return t, nil
}

func (r *memTransportTypeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if !r.store.delete(id) {
		return fmt.Errorf("repo.TransportTypeRepo.Delete: transport type %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *memTransportTypeRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]domain.TransportType, error) {
	var out []domain.TransportType
	for _, t := range r.store.all() {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}
