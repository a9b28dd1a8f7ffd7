package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TransportType is a transport category (bus, flight, van) offered by a
// specific company. The company is held as an id and resolved through its
// own repository — never as an embedded copy.
type TransportType struct {
	ID        uuid.UUID
	Kind      string
	CompanyID uuid.UUID
}

// NewTransportType builds a TransportType with a non-blank kind label.
func NewTransportType(kind string, companyID uuid.UUID) (TransportType, error) {
	t := TransportType{ID: uuid.New(), CompanyID: companyID}
	if err := t.SetKind(kind); err != nil {
		return TransportType{}, err
	}
	return t, nil
}

// SetKind replaces the kind label; blank labels are rejected.
func (t *TransportType) SetKind(kind string) error {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return fmt.Errorf("%w: transport kind must not be blank", ErrInvalidValue)
	}
	t.Kind = kind
	return nil
}
