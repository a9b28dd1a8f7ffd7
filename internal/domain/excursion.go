package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Excursion is a priced visit to an attraction, booked by one person and
// optionally linked to a registered destination.
type Excursion struct {
	ID            uuid.UUID
	City          string
	Attraction    string
	StartTime     TimeOfDay
	EndTime       TimeOfDay
	Price         float64
	PersonID      uuid.UUID
	Date          time.Time
	DestinationID *uuid.UUID
}

// NewExcursion builds an Excursion. The price must not be negative and the
// end time must be strictly later than the start time.
func NewExcursion(city, attraction string, start, end TimeOfDay, price float64, personID uuid.UUID, date time.Time, destinationID *uuid.UUID) (Excursion, error) {
	if price < 0 {
		return Excursion{}, fmt.Errorf("%w: excursion price %.2f must not be negative", ErrInvalidValue, price)
	}
	if !end.After(start) {
		return Excursion{}, fmt.Errorf("%w: excursion end time %s must be after start time %s", ErrInvalidValue, end, start)
	}
	return Excursion{
		ID:            uuid.New(),
		City:          city,
		Attraction:    attraction,
		StartTime:     start,
		EndTime:       end,
		Price:         price,
		PersonID:      personID,
		Date:          date,
		DestinationID: destinationID,
	}, nil
}

// SetPrice replaces the price; negative values are rejected.
func (e *Excursion) SetPrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: excursion price %.2f must not be negative", ErrInvalidValue, price)
	}
	e.Price = price
	return nil
}

// SetDestination links or unlinks (nil) the registered destination.
func (e *Excursion) SetDestination(destinationID *uuid.UUID) {
	e.DestinationID = destinationID
}

// DurationHours returns the scheduled length in fractional hours.
func (e Excursion) DurationHours() float64 {
	return float64(e.EndTime.Minutes()-e.StartTime.Minutes()) / 60
}

// PricePerHour divides the price by the duration; 0 for zero-length slots.
func (e Excursion) PricePerHour() float64 {
	hours := e.DurationHours()
	if hours <= 0 {
		return 0
	}
	return e.Price / hours
}
