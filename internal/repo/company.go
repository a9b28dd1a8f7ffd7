package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
)

// CompanyRepo defines the storage operations for Company records.
// Tax-id uniqueness is a service-level rule; the repo only offers the
// lookup the service needs to enforce it.
type CompanyRepo interface {
	Create(ctx context.Context, c domain.Company) (domain.Company, error)

	// GetByID returns domain.ErrNotFound if no company with that id exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Company, error)

	List(ctx context.Context) ([]domain.Company, error)

	// Update returns domain.ErrNotFound if no company with that id exists.
	Update(ctx context.Context, c domain.Company) (domain.Company, error)

	// Delete returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByTaxID finds a company by exact tax id match.
	// Returns domain.ErrNotFound when none matches.
	GetByTaxID(ctx context.Context, taxID string) (domain.Company, error)

	// SearchByName returns companies whose name contains the query,
	// case-insensitively.
	SearchByName(ctx context.Context, query string) ([]domain.Company, error)

	// Count returns the number of stored companies.
	Count(ctx context.Context) (int, error)
}

type memCompanyRepo struct {
	store *memStore[domain.Company]
}

// NewCompanyRepo constructs an empty in-memory CompanyRepo.
func NewCompanyRepo() CompanyRepo {
	return &memCompanyRepo{store: newMemStore[domain.Company]()}
}

func (r *memCompanyRepo) Create(_ context.Context, c domain.Company) (domain.Company, error) {
	r.store.put(c.ID, c)
	return c, nil
}

func (r *memCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Company, error) {
	c, ok := r.store.get(id)
	if !ok {
		return domain.Company{}, fmt.Errorf("repo.CompanyRepo.GetByID: company %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

func (r *memCompanyRepo) List(_ context.Context) ([]domain.Company, error) {
	return r.store.all(), nil
}

func (r *memCompanyRepo) Update(_ context.Context, c domain.Company) (domain.Company, error) {
	if !r.store.replace(c.ID, c) {
		return domain.Company{}, fmt.Errorf("repo.CompanyRepo.Update: company %s: %w", c.ID, domain.ErrNotFound)
	}
	return c, nil
}

func (r *memCompanyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if !r.store.delete(id) {
		return fmt.Errorf("repo.CompanyRepo.Delete: company %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *memCompanyRepo) GetByTaxID(_ context.Context, taxID string) (domain.Company, error) {
	for _, c := range r.store.all() {
		if c.TaxID == taxID {
			return c, nil
		}
	}
	return domain.Company{}, fmt.Errorf("repo.CompanyRepo.GetByTaxID: tax id %q: %w", taxID, domain.ErrNotFound)
}

func (r *memCompanyRepo) SearchByName(_ context.Context, query string) ([]domain.Company, error) {
	q := strings.ToLower(query)
	var out []domain.Company
	for _, c := range r.store.all() {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCompanyRepo) Count(_ context.Context) (int, error) {
	return len(r.store.all()), nil
}
