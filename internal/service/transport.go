package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
	"github.com/mfdias/tripdesk/internal/repo"
)

// TransportService manages transport type catalog entries. Every type
// must belong to an existing company.
type TransportService struct {
	types     repo.TransportTypeRepo
	companies repo.CompanyRepo
}

// NewTransportService constructs a TransportService.
func NewTransportService(types repo.TransportTypeRepo, companies repo.CompanyRepo) *TransportService {
	return &TransportService{types: types, companies: companies}
}

// CreateType registers a transport type for a company. The company must
// exist; the kind must be non-blank.
func (s *TransportService) CreateType(ctx context.Context, kind string, companyID uuid.UUID) (domain.TransportType, error) {
	if strings.TrimSpace(kind) == "" {
		return domain.TransportType{}, fmt.Errorf("%w: kind", domain.ErrMissingField)
	}
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return domain.TransportType{}, fmt.Errorf("service.TransportService.CreateType: company %s: %w", companyID, err)
	}

	tt, err := domain.NewTransportType(kind, companyID)
	if err != nil {
		return domain.TransportType{}, err
	}
	result, err := s.types.Create(ctx, tt)
	if err != nil {
		return domain.TransportType{}, fmt.Errorf("service.TransportService.CreateType: %w", err)
	}
	return result, nil
}

// GetType returns a transport type by id.
func (s *TransportService) GetType(ctx context.Context, id uuid.UUID) (domain.TransportType, error) {
	tt, err := s.types.GetByID(ctx, id)
	if err != nil {
		return domain.TransportType{}, fmt.Errorf("service.TransportService.GetType: %w", err)
	}
	return tt, nil
}

// ListTypes returns all transport types. Always returns a non-nil slice.
func (s *TransportService) ListTypes(ctx context.Context) ([]domain.TransportType, error) {
	tts, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TransportService.ListTypes: %w", err)
	}
	if tts == nil {
		return []domain.TransportType{}, nil
	}
	return tts, nil
}

// ListTypesByCompany returns the transport types operated by a company.
func (s *TransportService) ListTypesByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.TransportType, error) {
	tts, err := s.types.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("service.TransportService.ListTypesByCompany: %w", err)
	}
	return tts, nil
}

// UpdateKind renames a transport type.
func (s *TransportService) UpdateKind(ctx context.Context, id uuid.UUID, kind string) error {
	tt, err := s.types.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.TransportService.UpdateKind: %w", err)
	}
	if err := tt.SetKind(kind); err != nil {
		return err
	}
	if _, err := s.types.Update(ctx, tt); err != nil {
		return fmt.Errorf("service.TransportService.UpdateKind: %w", err)
	}
	return nil
}

// DeleteType removes a transport type by id.
func (s *TransportService) DeleteType(ctx context.Context, id uuid.UUID) error {
	if err := s.types.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TransportService.DeleteType: %w", err)
	}
	return nil
}
