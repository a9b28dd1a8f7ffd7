package domain

import (
	"fmt"
	"strings"
)

// CashCeiling is the largest amount accepted in cash; anything above is
// rejected as suspicious.
const CashCeiling = 10_000.0

// Card number digit-count bounds.
const (
	minCardDigits = 13
	maxCardDigits = 19
)

// pixTaxIDDigits is the exact digit count of a valid payer tax id.
const pixTaxIDDigits = 11

// PaymentStrategy is the method-specific rule set behind a payment.
// Validate returns false only for a non-positive amount; every other
// defect is an ErrPaymentRejected error. Process is validation plus the
// (here trivial) processing step. Describe renders the payload for
// display, masking sensitive digits.
type PaymentStrategy interface {
	Validate(data PaymentData) (bool, error)
	Process(data PaymentData) (bool, error)
	Describe(data PaymentData) string
	Method() PaymentMethod
}

// StrategyFor selects the strategy for a method tag. The set is closed;
// unknown tags are ErrInvalidValue.
func StrategyFor(method PaymentMethod) (PaymentStrategy, error) {
	switch method {
	case PaymentCash:
		return cashStrategy{}, nil
	case PaymentPix:
		return pixStrategy{}, nil
	case PaymentCard:
		return cardStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidValue, method)
	}
}

// ---- cash ------------------------------------------------------------------

type cashStrategy struct{}

func (cashStrategy) Validate(data PaymentData) (bool, error) {
	if data.Amount <= 0 {
		return false, nil
	}
	if data.Amount > CashCeiling {
		return false, fmt.Errorf("%w: cash amount %.2f above the %.2f ceiling", ErrPaymentRejected, data.Amount, CashCeiling)
	}
	return true, nil
}

func (s cashStrategy) Process(data PaymentData) (bool, error) {
	return s.Validate(data)
}

func (cashStrategy) Describe(PaymentData) string {
	return "Cash"
}

func (cashStrategy) Method() PaymentMethod { return PaymentCash }

// ---- pix -------------------------------------------------------------------

type pixStrategy struct{}

func (pixStrategy) Validate(data PaymentData) (bool, error) {
	if data.Amount <= 0 {
		return false, nil
	}
	if strings.TrimSpace(data.PayerTaxID) == "" {
		return false, fmt.Errorf("%w: payer tax id is required for pix payments", ErrPaymentRejected)
	}
	if len(digitsOnly(data.PayerTaxID)) != pixTaxIDDigits {
		return false, fmt.Errorf("%w: payer tax id must have %d digits", ErrPaymentRejected, pixTaxIDDigits)
	}
	return true, nil
}

func (s pixStrategy) Process(data PaymentData) (bool, error) {
	return s.Validate(data)
}

func (pixStrategy) Describe(data PaymentData) string {
	return fmt.Sprintf("PIX - payer %s", data.PayerTaxID)
}

func (pixStrategy) Method() PaymentMethod { return PaymentPix }

// ---- card ------------------------------------------------------------------

type cardStrategy struct{}

func (cardStrategy) Validate(data PaymentData) (bool, error) {
	if data.Amount <= 0 {
		return false, nil
	}
	if strings.TrimSpace(data.CardNumber) == "" {
		return false, fmt.Errorf("%w: card number is required", ErrPaymentRejected)
	}
	if strings.TrimSpace(data.CardBrand) == "" {
		return false, fmt.Errorf("%w: card brand is required", ErrPaymentRejected)
	}
	if n := len(digitsOnly(data.CardNumber)); n < minCardDigits || n > maxCardDigits {
		return false, fmt.Errorf("%w: card number must have %d to %d digits", ErrPaymentRejected, minCardDigits, maxCardDigits)
	}
	return true, nil
}

func (s cardStrategy) Process(data PaymentData) (bool, error) {
	return s.Validate(data)
}

func (cardStrategy) Describe(data PaymentData) string {
	return fmt.Sprintf("Card %s - %s", data.CardBrand, maskCardNumber(data.CardNumber))
}

func (cardStrategy) Method() PaymentMethod { return PaymentCard }

// digitsOnly strips every non-digit rune.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// maskCardNumber hides all but the last four characters of a card number.
func maskCardNumber(number string) string {
	if len(number) < 4 {
		return "****"
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}
