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

// ExcursionService manages excursion bookings. Every excursion is booked
// by an existing person and may be linked to a registered destination.
type ExcursionService struct {
	excursions   repo.ExcursionRepo
	people       repo.PersonRepo
	destinations repo.DestinationRepo
}

// NewExcursionService constructs an ExcursionService.
func NewExcursionService(excursions repo.ExcursionRepo, people repo.PersonRepo, destinations repo.DestinationRepo) *ExcursionService {
	return &ExcursionService{excursions: excursions, people: people, destinations: destinations}
}

// CreateExcursionInput carries the fields for a new excursion.
// DestinationID is optional.
type CreateExcursionInput struct {
	City          string
	Attraction    string
	StartTime     domain.TimeOfDay
	EndTime       domain.TimeOfDay
	Price         float64
	PersonID      uuid.UUID
	Date          time.Time
	DestinationID *uuid.UUID
}

// Create validates and stores a new excursion. The booking person must
// exist; so must the destination when one is given.
func (s *ExcursionService) Create(ctx context.Context, in CreateExcursionInput) (domain.Excursion, error) {
	if strings.TrimSpace(in.City) == "" {
		return domain.Excursion{}, fmt.Errorf("%w: city", domain.ErrMissingField)
	}
	if strings.TrimSpace(in.Attraction) == "" {
		return domain.Excursion{}, fmt.Errorf("%w: attraction", domain.ErrMissingField)
	}
	if in.Date.IsZero() {
		return domain.Excursion{}, fmt.Errorf("%w: date", domain.ErrMissingField)
	}

	if _, err := s.people.GetByID(ctx, in.PersonID); err != nil {
		return domain.Excursion{}, fmt.Errorf("service.ExcursionService.Create: person %s: %w", in.PersonID, err)
	}
	if in.DestinationID != nil {
		if _, err := s.destinations.GetByID(ctx, *in.DestinationID); err != nil {
			return domain.Excursion{}, fmt.Errorf("service.ExcursionService.Create: destination %s: %w", *in.DestinationID, err)
		}
	}

	e, err := domain.NewExcursion(in.City, in.Attraction, in.StartTime, in.EndTime, in.Price, in.PersonID, in.Date, in.DestinationID)
	if err != nil {
		return domain.Excursion{}, err
	}
	result, err := s.excursions.Create(ctx, e)
	if err != nil {
		return domain.Excursion{}, fmt.Errorf("service.ExcursionService.Create: %w", err)
	}
	return result, nil
}

// Get returns a single excursion by id.
func (s *ExcursionService) Get(ctx context.Context, id uuid.UUID) (domain.Excursion, error) {
	e, err := s.excursions.GetByID(ctx, id)
	if err != nil {
		return domain.Excursion{}, fmt.Errorf("service.ExcursionService.Get: %w", err)
	}
	return e, nil
}

// List returns all excursions. Always returns a non-nil slice.
func (s *ExcursionService) List(ctx context.Context) ([]domain.Excursion, error) {
	es, err := s.excursions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExcursionService.List: %w", err)
	}
	if es == nil {
		return []domain.Excursion{}, nil
	}
	return es, nil
}

// UpdatePrice replaces an excursion's price.
func (s *ExcursionService) UpdatePrice(ctx context.Context, id uuid.UUID, price float64) error {
	e, err := s.excursions.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.ExcursionService.UpdatePrice: %w", err)
	}
	if err := e.SetPrice(price); err != nil {
		return err
	}
	if _, err := s.excursions.Update(ctx, e); err != nil {
		return fmt.Errorf("service.ExcursionService.UpdatePrice: %w", err)
	}
	return nil
}

// LinkDestination links (or with nil unlinks) a registered destination.
func (s *ExcursionService) LinkDestination(ctx context.Context, id uuid.UUID, destinationID *uuid.UUID) error {
	e, err := s.excursions.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.ExcursionService.LinkDestination: %w", err)
	}
	if destinationID != nil {
		if _, err := s.destinations.GetByID(ctx, *destinationID); err != nil {
			return fmt.Errorf("service.ExcursionService.LinkDestination: destination %s: %w", *destinationID, err)
		}
	}
	e.SetDestination(destinationID)
	if _, err := s.excursions.Update(ctx, e); err != nil {
		return fmt.Errorf("service.ExcursionService.LinkDestination: %w", err)
	}
	return nil
}

// Delete removes an excursion by id.
func (s *ExcursionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.excursions.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ExcursionService.Delete: %w", err)
	}
	return nil
}

// ListByPerson returns the excursions booked by a person.
func (s *ExcursionService) ListByPerson(ctx context.Context, personID uuid.UUID) ([]domain.Excursion, error) {
	es, err := s.excursions.ListByPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("service.ExcursionService.ListByPerson: %w", err)
	}
	return es, nil
}

// ListByCity returns the excursions held in a city, matched without case.
func (s *ExcursionService) ListByCity(ctx context.Context, city string) ([]domain.Excursion, error) {
	es, err := s.excursions.ListByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("service.ExcursionService.ListByCity: %w", err)
	}
	return es, nil
}

// SearchByAttraction returns excursions whose attraction contains the
// query.
func (s *ExcursionService) SearchByAttraction(ctx context.Context, query string) ([]domain.Excursion, error) {
	es, err := s.excursions.SearchByAttraction(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service.ExcursionService.SearchByAttraction: %w", err)
	}
	return es, nil
}

// TotalSpentByPerson sums what a person has spent on excursions.
func (s *ExcursionService) TotalSpentByPerson(ctx context.Context, personID uuid.UUID) (float64, error) {
	es, err := s.excursions.ListByPerson(ctx, personID)
	if err != nil {
		return 0, fmt.Errorf("service.ExcursionService.TotalSpentByPerson: %w", err)
	}
	var total float64
	for _, e := range es {
		total += e.Price
	}
	return total, nil
}
