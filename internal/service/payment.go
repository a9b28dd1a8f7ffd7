package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
	"github.com/mfdias/tripdesk/internal/repo"
)

// PaymentService records payments against trips. The payment ledger is
// the single source of truth for how much of a trip has been paid; a
// payment is accepted only while the trip still has balance to cover it.
type PaymentService struct {
	payments repo.PaymentRepo
	people   repo.PersonRepo
	trips    repo.TripRepo
}

// NewPaymentService constructs a PaymentService over the given
// repositories.
func NewPaymentService(payments repo.PaymentRepo, people repo.PersonRepo, trips repo.TripRepo) *PaymentService {
	return &PaymentService{payments: payments, people: people, trips: trips}
}

// CreatePaymentInput carries the fields for a new payment. Date defaults
// to the current time when zero. The tax id, card number, and card brand
// matter only for the methods that use them.
type CreatePaymentInput struct {
	TripID     uuid.UUID
	PersonID   uuid.UUID
	Amount     float64
	Method     string
	Date       time.Time
	PayerTaxID string
	CardNumber string
	CardBrand  string
}

// Create validates and stores a new payment. The paying person must
// exist, the amount must fit within the trip's outstanding balance, and
// the method's own validation must pass. A trip that does not exist has
// an outstanding balance of zero, so any amount against it is rejected.
func (s *PaymentService) Create(ctx context.Context, in CreatePaymentInput) (domain.Payment, error) {
	if _, err := s.people.GetByID(ctx, in.PersonID); err != nil {
		return domain.Payment{}, fmt.Errorf("service.PaymentService.Create: person %s: %w", in.PersonID, err)
	}

	outstanding, err := s.outstandingBalance(ctx, in.TripID)
	if err != nil {
		return domain.Payment{}, err
	}
	if in.Amount > outstanding {
		return domain.Payment{}, fmt.Errorf("%w: payment of %.2f exceeds outstanding balance of %.2f",
			domain.ErrBalanceExceeded, in.Amount, outstanding)
	}

	method, err := domain.ParsePaymentMethod(in.Method)
	if err != nil {
		return domain.Payment{}, err
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	p, err := domain.NewPayment(date, in.Amount, in.PersonID, in.TripID, method, domain.PaymentData{
		PayerTaxID: in.PayerTaxID,
		CardNumber: in.CardNumber,
		CardBrand:  in.CardBrand,
	})
	if err != nil {
		return domain.Payment{}, err
	}
	result, err := s.payments.Create(ctx, p)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("service.PaymentService.Create: %w", err)
	}
	return result, nil
}

// Get returns a single payment by id.
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("service.PaymentService.Get: %w", err)
	}
	return p, nil
}

// List returns all payments. Always returns a non-nil slice.
func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	ps, err := s.payments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PaymentService.List: %w", err)
	}
	if ps == nil {
		return []domain.Payment{}, nil
	}
	return ps, nil
}

// Delete removes a payment by id, returning its amount to the trip's
// outstanding balance.
func (s *PaymentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.payments.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PaymentService.Delete: %w", err)
	}
	return nil
}

// ListByTrip returns the payments recorded against a trip.
func (s *PaymentService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Payment, error) {
	ps, err := s.payments.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PaymentService.ListByTrip: %w", err)
	}
	return ps, nil
}

// ListByPerson returns the payments made by a person.
func (s *PaymentService) ListByPerson(ctx context.Context, personID uuid.UUID) ([]domain.Payment, error) {
	ps, err := s.payments.ListByPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("service.PaymentService.ListByPerson: %w", err)
	}
	return ps, nil
}

// TotalByTrip sums the amounts paid against a trip.
func (s *PaymentService) TotalByTrip(ctx context.Context, tripID uuid.UUID) (float64, error) {
	ps, err := s.payments.ListByTrip(ctx, tripID)
	if err != nil {
		return 0, fmt.Errorf("service.PaymentService.TotalByTrip: %w", err)
	}
	return sumAmounts(ps), nil
}

// TotalByPerson sums the amounts a person has paid across all trips.
func (s *PaymentService) TotalByPerson(ctx context.Context, personID uuid.UUID) (float64, error) {
	ps, err := s.payments.ListByPerson(ctx, personID)
	if err != nil {
		return 0, fmt.Errorf("service.PaymentService.TotalByPerson: %w", err)
	}
	return sumAmounts(ps), nil
}

// Describe returns the stored payment's human-readable summary.
func (s *PaymentService) Describe(ctx context.Context, id uuid.UUID) (string, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.PaymentService.Describe: %w", err)
	}
	return p.Describe(), nil
}

func (s *PaymentService) outstandingBalance(ctx context.Context, tripID uuid.UUID) (float64, error) {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return 0, nil
	}
	ps, err := s.payments.ListByTrip(ctx, tripID)
	if err != nil {
		return 0, fmt.Errorf("service.PaymentService.outstandingBalance: %w", err)
	}
	return t.TotalPrice - sumAmounts(ps), nil
}

func sumAmounts(ps []domain.Payment) float64 {
	var total float64
	for _, p := range ps {
		total += p.Amount
	}
	return total
}
