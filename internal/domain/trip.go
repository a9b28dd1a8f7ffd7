package domain

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
)

// TripDestination links a trip to a destination with a 1-based visit order.
// The destination itself lives in its own repository; only the relation is
// recorded here.
type TripDestination struct {
	DestinationID uuid.UUID
	Order         int
}

// NewTripDestination builds a TripDestination; orders start at 1.
func NewTripDestination(destinationID uuid.UUID, order int) (TripDestination, error) {
	if order < 1 {
		return TripDestination{}, fmt.Errorf("%w: destination order %d must be 1 or greater", ErrInvalidValue, order)
	}
	return TripDestination{DestinationID: destinationID, Order: order}, nil
}

// Trip is a priced, dated itinerary over one or more ordered destinations,
// with participants and ticket references. The destination list is always
// kept sorted by order; participants behave as a set.
type Trip struct {
	ID             uuid.UUID
	Title          string
	StartDate      time.Time
	EndDate        time.Time
	TotalPrice     float64
	Destinations   []TripDestination
	ParticipantIDs []uuid.UUID
	TicketIDs      []uuid.UUID
}

// NewTrip builds a Trip. The end date must be strictly after the start
// date, the total price must not be negative, and at least one destination
// is required. The destination list is copied and sorted by order.
func NewTrip(title string, startDate, endDate time.Time, totalPrice float64, destinations []TripDestination) (Trip, error) {
	if !endDate.After(startDate) {
		return Trip{}, fmt.Errorf("%w: end date %s must be after start date %s",
			ErrInvalidValue, endDate.Format(time.DateOnly), startDate.Format(time.DateOnly))
	}
	if totalPrice < 0 {
		return Trip{}, fmt.Errorf("%w: trip total price %.2f must not be negative", ErrInvalidValue, totalPrice)
	}
	if len(destinations) == 0 {
		return Trip{}, fmt.Errorf("%w: trip needs at least one destination", ErrInvalidValue)
	}
	sorted := slices.Clone(destinations)
	sortByOrder(sorted)
	return Trip{
		ID:           uuid.New(),
		Title:        title,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalPrice:   totalPrice,
		Destinations: sorted,
	}, nil
}

// SetTotalPrice replaces the total price; negative values are rejected.
func (t *Trip) SetTotalPrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: trip total price %.2f must not be negative", ErrInvalidValue, price)
	}
	t.TotalPrice = price
	return nil
}

// AddParticipant records a person on the trip. Adding the same person
// twice is a no-op — the participant list is a set.
func (t *Trip) AddParticipant(personID uuid.UUID) {
	if !slices.Contains(t.ParticipantIDs, personID) {
		t.ParticipantIDs = append(t.ParticipantIDs, personID)
	}
}

// RemoveParticipant drops a person from the trip; unknown ids are ignored.
func (t *Trip) RemoveParticipant(personID uuid.UUID) {
	t.ParticipantIDs = slices.DeleteFunc(t.ParticipantIDs, func(id uuid.UUID) bool {
		return id == personID
	})
}

// AddTicket records a ticket reference on the trip.
func (t *Trip) AddTicket(ticketID uuid.UUID) {
	if !slices.Contains(t.TicketIDs, ticketID) {
		t.TicketIDs = append(t.TicketIDs, ticketID)
	}
}

// AddDestination appends a destination relation unless an identical one is
// already present, then re-sorts the list by order.
func (t *Trip) AddDestination(td TripDestination) {
	if slices.Contains(t.Destinations, td) {
		return
	}
	t.Destinations = append(t.Destinations, td)
	sortByOrder(t.Destinations)
}

// Reorder applies new order values to the matching destinations and
// re-sorts the list. Destinations not mentioned keep their previous order.
// Order values need not be contiguous or unique; ties keep their prior
// relative position.
func (t *Trip) Reorder(orders map[uuid.UUID]int) error {
	for _, order := range orders {
		if order < 1 {
			return fmt.Errorf("%w: destination order %d must be 1 or greater", ErrInvalidValue, order)
		}
	}
	for i := range t.Destinations {
		if order, ok := orders[t.Destinations[i].DestinationID]; ok {
			t.Destinations[i].Order = order
		}
	}
	sortByOrder(t.Destinations)
	return nil
}

// DurationDays returns the trip length in whole days.
func (t Trip) DurationDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours() / 24)
}

// PricePerParticipant splits the total price evenly across participants.
// The second return is false when the trip has no participants yet.
func (t Trip) PricePerParticipant() (float64, bool) {
	if len(t.ParticipantIDs) == 0 {
		return 0, false
	}
	return t.TotalPrice / float64(len(t.ParticipantIDs)), true
}

// WithinPaymentWindow reports whether payments are still accepted at the
// given date — up to and including the trip's start date.
func (t Trip) WithinPaymentWindow(asOf time.Time) bool {
	return !asOf.After(t.StartDate)
}

// sortByOrder sorts destination relations by order, keeping the prior
// relative position of equal orders.
func sortByOrder(ds []TripDestination) {
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Order < ds[j].Order
	})
}
