// Package domain contains the entity model for the tripdesk back office.
// Constructors are the single place where an entity's own invariants are
// checked; a failing check returns an error before any record exists.
// Setters on mutable fields re-run the same field-level checks.
// Cross-entity rules (foreign ids, balances, uniqueness) live in the
// service layer, not here.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinimumAge is the youngest a person may be at registration time.
const MinimumAge = 18

// DefaultIdentificationKind is assumed when no kind is supplied.
const DefaultIdentificationKind = "cpf"

// Person is a registered traveller or payer.
type Person struct {
	ID                 uuid.UUID
	Name               string
	Phone              string
	Identification     string
	IdentificationKind string
	BirthDate          time.Time
}

// NewPerson builds a Person and enforces the minimum-age rule against asOf.
// Returns ErrAgeBelowMinimum when the computed age is under MinimumAge;
// a birth date exactly MinimumAge years before asOf is accepted.
func NewPerson(name, phone, identification, kind string, birthDate, asOf time.Time) (Person, error) {
	if strings.TrimSpace(kind) == "" {
		kind = DefaultIdentificationKind
	}
	p := Person{
		ID:                 uuid.New(),
		Name:               name,
		Phone:              phone,
		Identification:     identification,
		IdentificationKind: kind,
		BirthDate:          birthDate,
	}
	if age := p.Age(asOf); age < MinimumAge {
		return Person{}, fmt.Errorf("%w: %d years, need %d", ErrAgeBelowMinimum, age, MinimumAge)
	}
	return p, nil
}

// Age returns the person's age in whole years at the given date.
func (p Person) Age(at time.Time) int {
	years := at.Year() - p.BirthDate.Year()
	birthday := time.Date(at.Year(), p.BirthDate.Month(), p.BirthDate.Day(), 0, 0, 0, 0, at.Location())
	if at.Before(birthday) {
		years--
	}
	return years
}

// SetPhone updates the contact phone. The phone has no format invariant.
func (p *Person) SetPhone(phone string) {
	p.Phone = phone
}
