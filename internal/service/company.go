package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
	"github.com/mfdias/tripdesk/internal/repo"
)

// CompanyService implements business logic for Company operations.
// Its distinguishing rule is cross-record tax-id uniqueness: no two
// companies may share a tax id, by exact string match.
type CompanyService struct {
	companies repo.CompanyRepo
}

// NewCompanyService constructs a CompanyService backed by the provided repo.
func NewCompanyService(companies repo.CompanyRepo) *CompanyService {
	return &CompanyService{companies: companies}
}

// CreateCompanyInput carries the fields for a new company.
type CreateCompanyInput struct {
	Name  string
	TaxID string
	Phone string
}

// Create validates and stores a new company.
// Returns ErrInvalidValue when another company already holds the tax id.
func (s *CompanyService) Create(ctx context.Context, in CreateCompanyInput) (domain.Company, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Company{}, fmt.Errorf("%w: name", domain.ErrMissingField)
	}
	if strings.TrimSpace(in.TaxID) == "" {
		return domain.Company{}, fmt.Errorf("%w: tax_id", domain.ErrMissingField)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return domain.Company{}, fmt.Errorf("%w: phone", domain.ErrMissingField)
	}

	c, err := domain.NewCompany(in.Name, in.TaxID, in.Phone)
	if err != nil {
		return domain.Company{}, err
	}
	if err := s.ensureTaxIDFree(ctx, c.TaxID, uuid.Nil); err != nil {
		return domain.Company{}, err
	}
	result, err := s.companies.Create(ctx, c)
	if err != nil {
		return domain.Company{}, fmt.Errorf("service.CompanyService.Create: %w", err)
	}
	return result, nil
}

// Get returns a single company by id.
func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return domain.Company{}, fmt.Errorf("service.CompanyService.Get: %w", err)
	}
	return c, nil
}

// List returns all companies. Always returns a non-nil slice.
func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	cs, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CompanyService.List: %w", err)
	}
	if cs == nil {
		return []domain.Company{}, nil
	}
	return cs, nil
}

// UpdateCompanyInput carries partial updates; nil fields are untouched.
type UpdateCompanyInput struct {
	Name  *string
	TaxID *string
	Phone *string
}

// Update applies the provided fields through the entity's validated
// setters. Changing the tax id re-runs the uniqueness scan; keeping the
// current value is always allowed.
func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, in UpdateCompanyInput) error {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.CompanyService.Update: %w", err)
	}

	if in.Name != nil {
		if err := c.SetName(*in.Name); err != nil {
			return err
		}
	}
	if in.TaxID != nil {
		if err := c.SetTaxID(*in.TaxID); err != nil {
			return err
		}
		if err := s.ensureTaxIDFree(ctx, c.TaxID, id); err != nil {
			return err
		}
	}
	if in.Phone != nil {
		if err := c.SetPhone(*in.Phone); err != nil {
			return err
		}
	}

	if _, err := s.companies.Update(ctx, c); err != nil {
		return fmt.Errorf("service.CompanyService.Update: %w", err)
	}
	return nil
}

// Delete removes a company by id. Transport types referencing it keep a
// dangling reference; there is no cascade.
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.companies.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CompanyService.Delete: %w", err)
	}
	return nil
}

// FindByTaxID finds a company by exact tax id.
func (s *CompanyService) FindByTaxID(ctx context.Context, taxID string) (domain.Company, error) {
	c, err := s.companies.GetByTaxID(ctx, taxID)
	if err != nil {
		return domain.Company{}, fmt.Errorf("service.CompanyService.FindByTaxID: %w", err)
	}
	return c, nil
}

// SearchByName returns companies whose name contains the query.
func (s *CompanyService) SearchByName(ctx context.Context, query string) ([]domain.Company, error) {
	cs, err := s.companies.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service.CompanyService.SearchByName: %w", err)
	}
	return cs, nil
}

// Count returns the number of registered companies.
func (s *CompanyService) Count(ctx context.Context) (int, error) {
	n, err := s.companies.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.CompanyService.Count: %w", err)
	}
	return n, nil
}

// ensureTaxIDFree rejects a tax id already held by a different company.
// Pass uuid.Nil as self when creating.
func (s *CompanyService) ensureTaxIDFree(ctx context.Context, taxID string, self uuid.UUID) error {
	existing, err := s.companies.GetByTaxID(ctx, taxID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("service.CompanyService.ensureTaxIDFree: %w", err)
	}
	if existing.ID != self {
		return fmt.Errorf("%w: a company with tax id %q already exists", domain.ErrInvalidValue, taxID)
	}
	return nil
}
