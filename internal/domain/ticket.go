package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ticket is one purchasable origin→destination leg of a trip, tied to a
// transport type. A ticket is either Pending or Purchased; the purchase
// flag, purchaser, seat, and reservation code move together as a unit
// through MarkPurchased and CancelPurchase.
type Ticket struct {
	ID              uuid.UUID
	TripID          uuid.UUID
	TransportTypeID uuid.UUID
	Origin          string
	Destination     string
	TravelDate      time.Time
	Departure       *TimeOfDay
	Arrival         *TimeOfDay
	Price           *float64 // nil when not yet known
	Purchased       bool
	PurchaserID     *uuid.UUID
	Seat            string
	ReservationCode string
}

// NewTicketParams carries the optional fields of a new ticket.
// Zero values mean "not set".
type NewTicketParams struct {
	Departure       *TimeOfDay
	Arrival         *TimeOfDay
	Price           *float64
	Purchased       bool
	PurchaserID     *uuid.UUID
	Seat            string
	ReservationCode string
}

// NewTicket builds a Ticket. Origin and destination are trimmed; a price,
// when present, must not be negative.
func NewTicket(tripID, transportTypeID uuid.UUID, origin, destination string, travelDate time.Time, params NewTicketParams) (Ticket, error) {
	t := Ticket{
		ID:              uuid.New(),
		TripID:          tripID,
		TransportTypeID: transportTypeID,
		Origin:          strings.TrimSpace(origin),
		Destination:     strings.TrimSpace(destination),
		TravelDate:      travelDate,
		Departure:       params.Departure,
		Arrival:         params.Arrival,
		Purchased:       params.Purchased,
		PurchaserID:     params.PurchaserID,
		Seat:            params.Seat,
		ReservationCode: params.ReservationCode,
	}
	if err := t.SetPrice(params.Price); err != nil {
		return Ticket{}, err
	}
	return t, nil
}

// SetPrice replaces the price. A nil price clears it; a negative price is
// rejected.
func (t *Ticket) SetPrice(price *float64) error {
	if price != nil && *price < 0 {
		return fmt.Errorf("%w: ticket price %.2f must not be negative", ErrInvalidValue, *price)
	}
	t.Price = price
	return nil
}

// SetOrigin replaces the trimmed origin.
func (t *Ticket) SetOrigin(origin string) {
	t.Origin = strings.TrimSpace(origin)
}

// SetDestination replaces the trimmed destination.
func (t *Ticket) SetDestination(destination string) {
	t.Destination = strings.TrimSpace(destination)
}

// MarkPurchased moves the ticket to the Purchased state on behalf of the
// given person. Seat and reservation code are overwritten only when
// non-empty values are supplied; empty values never erase existing ones.
func (t *Ticket) MarkPurchased(purchaserID uuid.UUID, seat, reservationCode string) {
	t.Purchased = true
	t.PurchaserID = &purchaserID
	if seat != "" {
		t.Seat = seat
	}
	if reservationCode != "" {
		t.ReservationCode = reservationCode
	}
}

// CancelPurchase returns the ticket to Pending, clearing purchaser, seat,
// and reservation code together. Calling it twice is a no-op.
func (t *Ticket) CancelPurchase() {
	t.Purchased = false
	t.PurchaserID = nil
	t.Seat = ""
	t.ReservationCode = ""
}

// EstimatedDuration returns the leg duration when both clock times are set.
// An arrival earlier in the day than the departure is read as an overnight
// leg crossing midnight.
func (t Ticket) EstimatedDuration() (time.Duration, bool) {
	if t.Departure == nil || t.Arrival == nil {
		return 0, false
	}
	mins := t.Arrival.Minutes() - t.Departure.Minutes()
	if mins < 0 {
		mins += 24 * 60
	}
	return time.Duration(mins) * time.Minute, true
}
