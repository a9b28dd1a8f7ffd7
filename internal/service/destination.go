package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
	"github.com/mfdias/tripdesk/internal/repo"
)

// DestinationService implements business logic for Destination operations.
type DestinationService struct {
	destinations repo.DestinationRepo
}

// NewDestinationService constructs a DestinationService backed by the
// provided repo.
func NewDestinationService(destinations repo.DestinationRepo) *DestinationService {
	return &DestinationService{destinations: destinations}
}

// CreateDestinationInput carries the fields for a new destination.
// Description is optional.
type CreateDestinationInput struct {
	City        string
	Country     string
	Description string
}

// Create validates and stores a new destination.
func (s *DestinationService) Create(ctx context.Context, in CreateDestinationInput) (domain.Destination, error) {
	if strings.TrimSpace(in.City) == "" {
		return domain.Destination{}, fmt.Errorf("%w: city", domain.ErrMissingField)
	}
	if strings.TrimSpace(in.Country) == "" {
		return domain.Destination{}, fmt.Errorf("%w: country", domain.ErrMissingField)
	}

	result, err := s.destinations.Create(ctx, domain.NewDestination(in.City, in.Country, in.Description))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Create: %w", err)
	}
	return result, nil
}

// Get returns a single destination by id.
func (s *DestinationService) Get(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Get: %w", err)
	}
	return d, nil
}

// List returns all destinations. Always returns a non-nil slice.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	ds, err := s.destinations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.List: %w", err)
	}
	if ds == nil {
		return []domain.Destination{}, nil
	}
	return ds, nil
}

// UpdateDescription replaces a destination's description — the only
// mutable field.
func (s *DestinationService) UpdateDescription(ctx context.Context, id uuid.UUID, description string) error {
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.DestinationService.UpdateDescription: %w", err)
	}
	d.SetDescription(description)
	if _, err := s.destinations.Update(ctx, d); err != nil {
		return fmt.Errorf("service.DestinationService.UpdateDescription: %w", err)
	}
	return nil
}

// Delete removes a destination by id. Trips referencing it keep a dangling
// relation; there is no cascade.
func (s *DestinationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.destinations.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.DestinationService.Delete: %w", err)
	}
	return nil
}

// FindByCity returns destinations in the named city.
func (s *DestinationService) FindByCity(ctx context.Context, city string) ([]domain.Destination, error) {
	ds, err := s.destinations.ListByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.FindByCity: %w", err)
	}
	return ds, nil
}

// FindByCountry returns destinations in the named country.
func (s *DestinationService) FindByCountry(ctx context.Context, country string) ([]domain.Destination, error) {
	ds, err := s.destinations.ListByCountry(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.FindByCountry: %w", err)
	}
	return ds, nil
}
