// Package service contains the business logic of the back office.
// Services translate missing inputs into ErrMissingField, resolve foreign
// ids through the owning repositories (ErrNotFound), and let domain errors
// pass through unchanged. Every failure is a typed error; no operation
// swallows a not-found into a bare boolean.
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

// PersonService implements business logic for Person operations.
type PersonService struct {
	people repo.PersonRepo
}

// NewPersonService constructs a PersonService backed by the provided repo.
func NewPersonService(people repo.PersonRepo) *PersonService {
	return &PersonService{people: people}
}

// CreatePersonInput carries the fields for a new person.
// IdentificationKind is optional and defaults to "cpf".
type CreatePersonInput struct {
	Name               string
	Phone              string
	Identification     string
	IdentificationKind string
	BirthDate          time.Time
}

// Create validates and stores a new person.
// Returns ErrMissingField for absent required fields and ErrAgeBelowMinimum
// when the person is under the minimum age today.
func (s *PersonService) Create(ctx context.Context, in CreatePersonInput) (domain.Person, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Person{}, fmt.Errorf("%w: name", domain.ErrMissingField)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return domain.Person{}, fmt.Errorf("%w: phone", domain.ErrMissingField)
	}
	if strings.TrimSpace(in.Identification) == "" {
		return domain.Person{}, fmt.Errorf("%w: identification", domain.ErrMissingField)
	}
	if in.BirthDate.IsZero() {
		return domain.Person{}, fmt.Errorf("%w: birth_date", domain.ErrMissingField)
	}

	p, err := domain.NewPerson(in.Name, in.Phone, in.Identification, in.IdentificationKind, in.BirthDate, time.Now())
	if err != nil {
		return domain.Person{}, err
	}
	result, err := s.people.Create(ctx, p)
	if err != nil {
		return domain.Person{}, fmt.Errorf("service.PersonService.Create: %w", err)
	}
	return result, nil
}

// Get returns a single person by id.
func (s *PersonService) Get(ctx context.Context, id uuid.UUID) (domain.Person, error) {
	p, err := s.people.GetByID(ctx, id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("service.PersonService.Get: %w", err)
	}
	return p, nil
}

// List returns all people. Always returns a non-nil slice.
func (s *PersonService) List(ctx context.Context) ([]domain.Person, error) {
	people, err := s.people.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PersonService.List: %w", err)
	}
	if people == nil {
		return []domain.Person{}, nil
	}
	return people, nil
}

// UpdatePhone replaces a person's contact phone.
func (s *PersonService) UpdatePhone(ctx context.Context, id uuid.UUID, phone string) error {
	p, err := s.people.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.PersonService.UpdatePhone: %w", err)
	}
	p.SetPhone(phone)
	if _, err := s.people.Update(ctx, p); err != nil {
		return fmt.Errorf("service.PersonService.UpdatePhone: %w", err)
	}
	return nil
}

// Delete removes a person by id. Dependents holding this person's id keep
// a dangling reference; there is no cascade.
func (s *PersonService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.people.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PersonService.Delete: %w", err)
	}
	return nil
}

// FindByIdentification finds a person by their identification string.
func (s *PersonService) FindByIdentification(ctx context.Context, identification string) (domain.Person, error) {
	p, err := s.people.GetByIdentification(ctx, identification)
	if err != nil {
		return domain.Person{}, fmt.Errorf("service.PersonService.FindByIdentification: %w", err)
	}
	return p, nil
}

// ListAdults returns people of legal age at the given date.
func (s *PersonService) ListAdults(ctx context.Context, asOf time.Time) ([]domain.Person, error) {
	people, err := s.people.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PersonService.ListAdults: %w", err)
	}
	adults := make([]domain.Person, 0, len(people))
	for _, p := range people {
		if p.Age(asOf) >= domain.MinimumAge {
			adults = append(adults, p)
		}
	}
	return adults, nil
}
