package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Company is a transport operator. All three fields must be non-blank after
// trimming; tax-id uniqueness across companies is enforced by the service.
type Company struct {
	ID    uuid.UUID
	Name  string
	TaxID string
	Phone string
}

// NewCompany builds a Company from trimmed fields.
// Returns ErrInvalidValue naming the first blank field.
func NewCompany(name, taxID, phone string) (Company, error) {
	c := Company{ID: uuid.New()}
	if err := c.SetName(name); err != nil {
		return Company{}, err
	}
	if err := c.SetTaxID(taxID); err != nil {
		return Company{}, err
	}
	if err := c.SetPhone(phone); err != nil {
		return Company{}, err
	}
	return c, nil
}

// SetName replaces the company name; blank names are rejected.
func (c *Company) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: company name must not be blank", ErrInvalidValue)
	}
	c.Name = name
	return nil
}

// SetTaxID replaces the tax id; blank ids are rejected.
// Cross-record uniqueness is the CompanyService's job.
func (c *Company) SetTaxID(taxID string) error {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		return fmt.Errorf("%w: company tax id must not be blank", ErrInvalidValue)
	}
	c.TaxID = taxID
	return nil
}

// SetPhone replaces the contact phone; blank phones are rejected.
func (c *Company) SetPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("%w: company phone must not be blank", ErrInvalidValue)
	}
	c.Phone = phone
	return nil
}
