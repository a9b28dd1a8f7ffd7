package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentMethod tags the closed set of supported payment methods.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "card"
)

// ParsePaymentMethod maps a user-supplied method string onto the enum,
// ignoring case and surrounding space. Unknown strings are ErrInvalidValue.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentCash:
		return PaymentCash, nil
	case PaymentPix:
		return PaymentPix, nil
	case PaymentCard:
		return PaymentCard, nil
	default:
		return "", fmt.Errorf("%w: unknown payment method %q", ErrInvalidValue, s)
	}
}

// DisplayName returns the human-readable method name.
func (m PaymentMethod) DisplayName() string {
	switch m {
	case PaymentCash:
		return "Cash"
	case PaymentPix:
		return "PIX"
	case PaymentCard:
		return "Credit Card"
	default:
		return string(m)
	}
}

// PaymentData carries the amount plus the method-specific payload handed to
// a strategy. Fields irrelevant to the selected method are ignored.
type PaymentData struct {
	Amount     float64
	PayerTaxID string // pix
	CardNumber string // card
	CardBrand  string // card
}

// Payment records money paid by a person against a trip. Construction
// selects the strategy for the declared method and fails unless the
// method-specific validation passes.
type Payment struct {
	ID       uuid.UUID
	Date     time.Time
	Amount   float64
	PersonID uuid.UUID
	TripID   uuid.UUID
	Method   PaymentMethod
	Details  PaymentData
}

// NewPayment builds a Payment. The amount must be positive, the method
// must be one of the closed set, and the method's strategy must accept the
// payload. No partially-built payment is ever returned.
func NewPayment(date time.Time, amount float64, personID, tripID uuid.UUID, method PaymentMethod, details PaymentData) (Payment, error) {
	if amount <= 0 {
		return Payment{}, fmt.Errorf("%w: payment amount %.2f must be positive", ErrInvalidValue, amount)
	}
	details.Amount = amount

	strategy, err := StrategyFor(method)
	if err != nil {
		return Payment{}, err
	}
	ok, err := strategy.Validate(details)
	if err != nil {
		return Payment{}, err
	}
	if !ok {
		return Payment{}, fmt.Errorf("%w: invalid payment data", ErrPaymentRejected)
	}

	return Payment{
		ID:       uuid.New(),
		Date:     date,
		Amount:   amount,
		PersonID: personID,
		TripID:   tripID,
		Method:   method,
		Details:  details,
	}, nil
}

// Process runs the strategy's processing rule over the stored payload.
func (p Payment) Process() (bool, error) {
	strategy, err := StrategyFor(p.Method)
	if err != nil {
		return false, err
	}
	return strategy.Process(p.Details)
}

// Describe returns the strategy's human-readable payload summary.
func (p Payment) Describe() string {
	strategy, err := StrategyFor(p.Method)
	if err != nil {
		return string(p.Method)
	}
	return strategy.Describe(p.Details)
}
