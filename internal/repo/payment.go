package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
)

// PaymentRepo defines the storage operations for Payment records.
// It is the single source of truth for what has been paid against a trip;
// balance math in the services always sums from here.
type PaymentRepo interface {
	Create(ctx context.Context, p domain.Payment) (domain.Payment, error)

	// GetByID returns domain.ErrNotFound if no payment with that id exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Payment, error)

	List(ctx context.Context) ([]domain.Payment, error)

	// Delete returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByTrip returns all payments recorded against a trip.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Payment, error)

	// ListByPerson returns all payments made by a person.
	ListByPerson(ctx context.Context, personID uuid.UUID) ([]domain.Payment, error)
}

type memPaymentRepo struct {
	store *memStore[domain.Payment]
}

// NewPaymentRepo constructs an empty in-memory PaymentRepo.
func NewPaymentRepo() PaymentRepo {
	return &memPaymentRepo{store: newMemStore[domain.Payment]()}
}

func (r *memPaymentRepo) Create(_ context.Context, p domain.Payment) (domain.Payment, error) {
	r.store.put(p.ID, p)
	return p, nil
}

func (r *memPaymentRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Payment, error) {
	p, ok := r.store.get(id)
	if !ok {
		return domain.Payment{}, fmt.Errorf("repo.PaymentRepo.GetByID: payment %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (r *memPaymentRepo) List(_ context.Context) ([]domain.Payment, error) {
	return r.store.all(), nil
}

func (r *memPaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if !r.store.delete(id) {
		return fmt.Errorf("repo.PaymentRepo.Delete: payment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *memPaymentRepo) ListByTrip(_ context.Context, tripID uuid.UUID) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.store.all() {
		if p.TripID == tripID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) ListByPerson(_ context.Context, personID uuid.UUID) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.store.all() {
		if p.PersonID == personID {
			out = append(out, p)
		}
	}
	return out, nil
}
