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

// TicketService manages tickets and their purchase lifecycle. A ticket
// always belongs to an existing trip and transport type; when created
// already purchased, or marked purchased later, the purchaser must be a
// registered person.
type TicketService struct {
	tickets repo.TicketRepo
	types   repo.TransportTypeRepo
	trips   repo.TripRepo
	people  repo.PersonRepo
}

// NewTicketService constructs a TicketService over the given repositories.
func NewTicketService(tickets repo.TicketRepo, types repo.TransportTypeRepo, trips repo.TripRepo, people repo.PersonRepo) *TicketService {
	return &TicketService{tickets: tickets, types: types, trips: trips, people: people}
}

// CreateTicketInput carries the fields for a new ticket. The optional
// fields mirror domain.NewTicketParams.
type CreateTicketInput struct {
	TripID          uuid.UUID
	TransportTypeID uuid.UUID
	Origin          string
	Destination     string
	TravelDate      time.Time
	Departure       *domain.TimeOfDay
	Arrival         *domain.TimeOfDay
	Price           *float64
	Purchased       bool
	PurchaserID     *uuid.UUID
	Seat            string
	ReservationCode string
}

// Create validates and stores a new ticket, then records its reference on
// the owning trip.
func (s *TicketService) Create(ctx context.Context, in CreateTicketInput) (domain.Ticket, error) {
	if strings.TrimSpace(in.Origin) == "" {
		return domain.Ticket{}, fmt.Errorf("%w: origin", domain.ErrMissingField)
	}
	if strings.TrimSpace(in.Destination) == "" {
		return domain.Ticket{}, fmt.Errorf("%w: destination", domain.ErrMissingField)
	}
	if in.TravelDate.IsZero() {
		return domain.Ticket{}, fmt.Errorf("%w: travel_date", domain.ErrMissingField)
	}

	trip, err := s.trips.GetByID(ctx, in.TripID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("service.TicketService.Create: trip %s: %w", in.TripID, err)
	}
	if _, err := s.types.GetByID(ctx, in.TransportTypeID); err != nil {
		return domain.Ticket{}, fmt.Errorf("service.TicketService.Create: transport type %s: %w", in.TransportTypeID, err)
	}
	if in.PurchaserID != nil {
		if _, err := s.people.GetByID(ctx, *in.PurchaserID); err != nil {
			return domain.Ticket{}, fmt.Errorf("service.TicketService.Create: purchaser %s: %w", *in.PurchaserID, err)
		}
	}

	t, err := domain.NewTicket(in.TripID, in.TransportTypeID, in.Origin, in.Destination, in.TravelDate, domain.NewTicketParams{
		Departure:       in.Departure,
		Arrival:         in.Arrival,
		Price:           in.Price,
		Purchased:       in.Purchased,
		PurchaserID:     in.PurchaserID,
		Seat:            in.Seat,
		ReservationCode: in.ReservationCode,
	})
	if err != nil {
		return domain.Ticket{}, err
	}
	result, err := s.tickets.Create(ctx, t)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("service.TicketService.Create: %w", err)
	}

	trip.AddTicket(result.ID)
	if _, err := s.trips.Update(ctx, trip); err != nil {
		return domain.Ticket{}, fmt.Errorf("service.TicketService.Create: %w", err)
	}
	return result, nil
}

// Get returns a single ticket by id.
func (s *TicketService) Get(ctx context.Context, id uuid.UUID) (domain.Ticket, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("service.TicketService.Get: %w", err)
	}
	return t, nil
}

// List returns all tickets. Always returns a non-nil slice.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	ts, err := s.tickets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TicketService.List: %w", err)
	}
	if ts == nil {
		return []domain.Ticket{}, nil
	}
	return ts, nil
}

// UpdateTicketInput carries partial updates; nil fields are untouched.
type UpdateTicketInput struct {
	Origin      *string
	Destination *string
	Price       *float64
	ClearPrice  bool
}

// Update applies the provided fields. ClearPrice removes the price
// entirely and wins over Price when both are set.
func (s *TicketService) Update(ctx context.Context, id uuid.UUID, in UpdateTicketInput) error {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.TicketService.Update: %w", err)
	}

	if in.Origin != nil {
		t.SetOrigin(*in.Origin)
	}
	if in.Destination != nil {
		t.SetDestination(*in.Destination)
	}
	switch {
	case in.ClearPrice:
		if err := t.SetPrice(nil); err != nil {
			return err
		}
	case in.Price != nil:
		if err := t.SetPrice(in.Price); err != nil {
			return err
		}
	}

	if _, err := s.tickets.Update(ctx, t); err != nil {
		return fmt.Errorf("service.TicketService.Update: %w", err)
	}
	return nil
}

// Delete removes a ticket by id. The owning trip's reference list is not
// rewritten; there is no cascade.
func (s *TicketService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.tickets.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TicketService.Delete: %w", err)
	}
	return nil
}

// MarkPurchased records a purchase by an existing person. Empty seat or
// reservation code values never erase ones already on the ticket.
func (s *TicketService) MarkPurchased(ctx context.Context, id, purchaserID uuid.UUID, seat, reservationCode string) error {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.TicketService.MarkPurchased: %w", err)
	}
	if _, err := s.people.GetByID(ctx, purchaserID); err != nil {
		return fmt.Errorf("service.TicketService.MarkPurchased: purchaser %s: %w", purchaserID, err)
	}
	t.MarkPurchased(purchaserID, seat, reservationCode)
	if _, err := s.tickets.Update(ctx, t); err != nil {
		return fmt.Errorf("service.TicketService.MarkPurchased: %w", err)
	}
	return nil
}

// CancelPurchase returns a ticket to Pending. Cancelling a pending ticket
// is a no-op.
func (s *TicketService) CancelPurchase(ctx context.Context, id uuid.UUID) error {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.TicketService.CancelPurchase: %w", err)
	}
	t.CancelPurchase()
	if _, err := s.tickets.Update(ctx, t); err != nil {
		return fmt.Errorf("service.TicketService.CancelPurchase: %w", err)
	}
	return nil
}

// ListByTrip returns all tickets belonging to a trip.
func (s *TicketService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Ticket, error) {
	ts, err := s.tickets.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TicketService.ListByTrip: %w", err)
	}
	return ts, nil
}

// ListPending returns a trip's tickets still awaiting purchase.
func (s *TicketService) ListPending(ctx context.Context, tripID uuid.UUID) ([]domain.Ticket, error) {
	return s.listByPurchaseState(ctx, tripID, false)
}

// ListPurchased returns a trip's purchased tickets.
func (s *TicketService) ListPurchased(ctx context.Context, tripID uuid.UUID) ([]domain.Ticket, error) {
	return s.listByPurchaseState(ctx, tripID, true)
}

func (s *TicketService) listByPurchaseState(ctx context.Context, tripID uuid.UUID, purchased bool) ([]domain.Ticket, error) {
	ts, err := s.tickets.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TicketService.listByPurchaseState: %w", err)
	}
	filtered := make([]domain.Ticket, 0, len(ts))
	for _, t := range ts {
		if t.Purchased == purchased {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// TotalTicketCost sums the known prices of a trip's tickets. Tickets
// without a price contribute nothing.
func (s *TicketService) TotalTicketCost(ctx context.Context, tripID uuid.UUID) (float64, error) {
	ts, err := s.tickets.ListByTrip(ctx, tripID)
	if err != nil {
		return 0, fmt.Errorf("service.TicketService.TotalTicketCost: %w", err)
	}
	var total float64
	for _, t := range ts {
		if t.Price != nil {
			total += *t.Price
		}
	}
	return total, nil
}

// Summary aggregates a trip's tickets into counts, costs, and a
// per-purchaser tally. The purchased percentage is 0 when the trip has no
// tickets.
func (s *TicketService) Summary(ctx context.Context, tripID uuid.UUID) (domain.TicketSummary, error) {
	ts, err := s.tickets.ListByTrip(ctx, tripID)
	if err != nil {
		return domain.TicketSummary{}, fmt.Errorf("service.TicketService.Summary: %w", err)
	}

	summary := domain.TicketSummary{PurchasedBy: map[uuid.UUID]int{}}
	for _, t := range ts {
		summary.Total++
		if t.Price != nil {
			summary.TotalCost += *t.Price
		}
		if t.Purchased {
			summary.Purchased++
			if t.Price != nil {
				summary.PurchasedCost += *t.Price
			}
			if t.PurchaserID != nil {
				summary.PurchasedBy[*t.PurchaserID]++
			}
		} else {
			summary.Pending++
		}
	}
	if summary.Total > 0 {
		summary.PercentPurchased = float64(summary.Purchased) / float64(summary.Total) * 100
	}
	return summary, nil
}
