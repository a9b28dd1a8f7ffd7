package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
)

// TicketRepo defines the storage operations for Ticket records.
type TicketRepo interface {
	Create(ctx context.Context, t domain.Ticket) (domain.Ticket, error)

	// GetByID returns domain.ErrNotFound if no ticket with that id exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Ticket, error)

	List(ctx context.Context) ([]domain.Ticket, error)

	// Update returns domain.ErrNotFound if no ticket with that id exists.
	Update(ctx context.Context, t domain.Ticket) (domain.Ticket, error)

	// Delete returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByTrip returns all tickets recorded against a trip.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Ticket, error)

	// ListByPurchaser returns purchased tickets bought by the given person.
	ListByPurchaser(ctx context.Context, personID uuid.UUID) ([]domain.Ticket, error)
}

type memTicketRepo struct {
	store *memStore[domain.Ticket]
}

// NewTicketRepo constructs an empty in-memory TicketRepo.
func NewTicketRepo() TicketRepo {
	return &memTicketRepo{store: newMemStore[domain.Ticket]()}
}

func (r *memTicketRepo) Create(_ context.Context, t domain.Ticket) (domain.Ticket, error) {
	r.store.put(t.ID, t)
	return t, nil
}

func (r *memTicketRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Ticket, error) {
	t, ok := r.store.get(id)
	if !ok {
		return domain.Ticket{}, fmt.Errorf("repo.TicketRepo.GetByID: ticket %s: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

func (r *memTicketRepo) List(_ context.Context) ([]domain.Ticket, error) {
	return r.store.all(), nil
}

func (r *memTicketRepo) Update(_ context.Context, t domain.Ticket) (domain.Ticket, error) {
	if !r.store.replace(t.ID, t) {
		return domain.Ticket{}, fmt.Errorf("repo.TicketRepo.Update: ticket %s: %w", t.ID, domain.ErrNotFound)
	}
	return t, nil
}

func (r *memTicketRepo) Delete(_ context.Context, id uuid.UUID) error {
	if !r.store.delete(id) {
		return fmt.Errorf("repo.TicketRepo.Delete: ticket %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *memTicketRepo) ListByTrip(_ context.Context, tripID uuid.UUID) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, t := range r.store.all() {
		if t.TripID == tripID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTicketRepo) ListByPurchaser(_ context.Context, personID uuid.UUID) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, t := range r.store.all() {
		if t.PurchaserID != nil && *t.PurchaserID == personID {
			out = append(out, t)
		}
	}
	return out, nil
}
