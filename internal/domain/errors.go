package domain

import "errors"

// Sentinel errors for the whole core. Repos and services wrap these with
// fmt.Errorf("...: %w", ...) so callers can match with errors.Is while the
// message keeps the entity kind, id, or offending value.
var (
	// ErrNotFound is returned when a referenced entity id does not resolve
	// in its owning repository.
	ErrNotFound = errors.New("not found")

	// ErrMissingField is returned by service create/update operations when a
	// required input field is absent or blank. The wrap names the field.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidValue is returned when a value fails a domain invariant:
	// negative price, end date not after start date, duplicate tax id,
	// unknown payment method, order below 1.
	ErrInvalidValue = errors.New("invalid value")

	// ErrPaymentRejected is returned when a payment method's own rule set
	// refuses the payment (cash ceiling, malformed payer tax id, bad card).
	ErrPaymentRejected = errors.New("payment rejected")

	// ErrBalanceExceeded is returned when a payment would exceed the trip's
	// outstanding balance. The wrap names both amounts.
	ErrBalanceExceeded = errors.New("payment exceeds outstanding balance")

	// ErrAgeBelowMinimum is returned when a person is younger than the
	// minimum age at creation time.
	ErrAgeBelowMinimum = errors.New("age below minimum")
)
