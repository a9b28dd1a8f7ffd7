package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Destination is a city/country pair a trip can visit.
// Identity for equality purposes is the (city, country) pair; only the
// description is mutable.
type Destination struct {
	ID          uuid.UUID
	City        string
	Country     string
	Description string
}

// NewDestination builds a Destination. The pair itself carries no invariant;
// required-field checks happen in the service layer.
func NewDestination(city, country, description string) Destination {
	return Destination{
		ID:          uuid.New(),
		City:        city,
		Country:     country,
		Description: description,
	}
}

// FullName returns "City, Country".
func (d Destination) FullName() string {
	return fmt.Sprintf("%s, %s", d.City, d.Country)
}

// SameLocation reports whether two destinations name the same place,
// regardless of their ids or descriptions.
func (d Destination) SameLocation(other Destination) bool {
	return d.City == other.City && d.Country == other.Country
}

// SetDescription replaces the free-text description.
func (d *Destination) SetDescription(description string) {
	d.Description = description
}
