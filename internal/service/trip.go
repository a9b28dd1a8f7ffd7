package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
	"github.com/mfdias/tripdesk/internal/repo"
)

// TripService manages trips and the relations hanging off them:
// destinations in visit order, participants, ticket references, and the
// paid-versus-total balance derived from the payment ledger.
type TripService struct {
	trips        repo.TripRepo
	people       repo.PersonRepo
	destinations repo.DestinationRepo
	payments     repo.PaymentRepo
}

// NewTripService constructs a TripService over the given repositories.
func NewTripService(trips repo.TripRepo, people repo.PersonRepo, destinations repo.DestinationRepo, payments repo.PaymentRepo) *TripService {
	return &TripService{trips: trips, people: people, destinations: destinations, payments: payments}
}

// CreateTripInput carries the fields for a new trip. Orders is optional:
// when nil the destinations are visited in the given sequence (1..n);
// when set it must have exactly one order per destination.
type CreateTripInput struct {
	Title          string
	StartDate      time.Time
	EndDate        time.Time
	TotalPrice     float64
	DestinationIDs []uuid.UUID
	Orders         []int
}

// Create validates and stores a new trip. Every referenced destination
// must exist.
func (s *TripService) Create(ctx context.Context, in CreateTripInput) (domain.Trip, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Trip{}, fmt.Errorf("%w: title", domain.ErrMissingField)
	}
	if in.StartDate.IsZero() {
		return domain.Trip{}, fmt.Errorf("%w: start_date", domain.ErrMissingField)
	}
	if in.EndDate.IsZero() {
		return domain.Trip{}, fmt.Errorf("%w: end_date", domain.ErrMissingField)
	}
	if len(in.Orders) > 0 && len(in.Orders) != len(in.DestinationIDs) {
		return domain.Trip{}, fmt.Errorf("%w: got %d orders for %d destinations",
			domain.ErrInvalidValue, len(in.Orders), len(in.DestinationIDs))
	}

	relations := make([]domain.TripDestination, 0, len(in.DestinationIDs))
	for i, destID := range in.DestinationIDs {
		if _, err := s.destinations.GetByID(ctx, destID); err != nil {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: destination %s: %w", destID, err)
		}
		order := i + 1
		if len(in.Orders) > 0 {
			order = in.Orders[i]
		}
		td, err := domain.NewTripDestination(destID, order)
		if err != nil {
			return domain.Trip{}, err
		}
		relations = append(relations, td)
	}

	t, err := domain.NewTrip(in.Title, in.StartDate, in.EndDate, in.TotalPrice, relations)
	if err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Create(ctx, t)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// Get returns a single trip by id.
func (s *TripService) Get(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	return t, nil
}

// List returns all trips. Always returns a non-nil slice.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	ts, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if ts == nil {
		return []domain.Trip{}, nil
	}
	return ts, nil
}

// UpdateTotalPrice replaces a trip's total price.
func (s *TripService) UpdateTotalPrice(ctx context.Context, id uuid.UUID, price float64) error {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.TripService.UpdateTotalPrice: %w", err)
	}
	if err := t.SetTotalPrice(price); err != nil {
		return err
	}
	if _, err := s.trips.Update(ctx, t); err != nil {
		return fmt.Errorf("service.TripService.UpdateTotalPrice: %w", err)
	}
	return nil
}

// Delete removes a trip by id. Payments and tickets referencing the trip
// are kept; there is no cascade.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// AddParticipant enrolls an existing person on a trip. Enrolling the same
// person twice is a no-op.
func (s *TripService) AddParticipant(ctx context.Context, tripID, personID uuid.UUID) error {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.TripService.AddParticipant: %w", err)
	}
	if _, err := s.people.GetByID(ctx, personID); err != nil {
		return fmt.Errorf("service.TripService.AddParticipant: person %s: %w", personID, err)
	}
	t.AddParticipant(personID)
	if _, err := s.trips.Update(ctx, t); err != nil {
		return fmt.Errorf("service.TripService.AddParticipant: %w", err)
	}
	return nil
}

// RemoveParticipant drops a person from a trip; unknown persons are
// ignored.
func (s *TripService) RemoveParticipant(ctx context.Context, tripID, personID uuid.UUID) error {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.TripService.RemoveParticipant: %w", err)
	}
	t.RemoveParticipant(personID)
	if _, err := s.trips.Update(ctx, t); err != nil {
		return fmt.Errorf("service.TripService.RemoveParticipant: %w", err)
	}
	return nil
}

// AddDestination appends a destination relation to an existing trip.
func (s *TripService) AddDestination(ctx context.Context, tripID, destinationID uuid.UUID, order int) error {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.TripService.AddDestination: %w", err)
	}
	if _, err := s.destinations.GetByID(ctx, destinationID); err != nil {
		return fmt.Errorf("service.TripService.AddDestination: destination %s: %w", destinationID, err)
	}
	td, err := domain.NewTripDestination(destinationID, order)
	if err != nil {
		return err
	}
	t.AddDestination(td)
	if _, err := s.trips.Update(ctx, t); err != nil {
		return fmt.Errorf("service.TripService.AddDestination: %w", err)
	}
	return nil
}

// ReorderDestinations applies new visit orders to a trip's destinations.
// Orders below 1 reject the whole call; the trip is left untouched.
func (s *TripService) ReorderDestinations(ctx context.Context, tripID uuid.UUID, orders map[uuid.UUID]int) error {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.TripService.ReorderDestinations: %w", err)
	}
	if err := t.Reorder(orders); err != nil {
		return err
	}
	if _, err := s.trips.Update(ctx, t); err != nil {
		return fmt.Errorf("service.TripService.ReorderDestinations: %w", err)
	}
	return nil
}

// AddTicketRef records a ticket reference on a trip.
func (s *TripService) AddTicketRef(ctx context.Context, tripID, ticketID uuid.UUID) error {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.TripService.AddTicketRef: %w", err)
	}
	t.AddTicket(ticketID)
	if _, err := s.trips.Update(ctx, t); err != nil {
		return fmt.Errorf("service.TripService.AddTicketRef: %w", err)
	}
	return nil
}

// TotalPaid sums the amounts of all payments recorded against a trip.
func (s *TripService) TotalPaid(ctx context.Context, tripID uuid.UUID) (float64, error) {
	payments, err := s.payments.ListByTrip(ctx, tripID)
	if err != nil {
		return 0, fmt.Errorf("service.TripService.TotalPaid: %w", err)
	}
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total, nil
}

// OutstandingBalance returns how much of the trip's total price remains
// unpaid. A trip that does not exist has no balance left to pay.
func (s *TripService) OutstandingBalance(ctx context.Context, tripID uuid.UUID) (float64, error) {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return 0, nil
	}
	paid, err := s.TotalPaid(ctx, tripID)
	if err != nil {
		return 0, err
	}
	return t.TotalPrice - paid, nil
}

// ListInProgress returns the trips whose date range includes the given
// moment.
func (s *TripService) ListInProgress(ctx context.Context, asOf time.Time) ([]domain.Trip, error) {
	ts, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListInProgress: %w", err)
	}
	inProgress := make([]domain.Trip, 0)
	for _, t := range ts {
		if !asOf.Before(t.StartDate) && !asOf.After(t.EndDate) {
			inProgress = append(inProgress, t)
		}
	}
	return inProgress, nil
}
