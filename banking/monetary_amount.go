package banking

import (
	"github.com/shopspring/decimal"
)

// minorUnitExponent is the exponent used to display minor units as a decimal amount
const minorUnitExponent = -2

// MonetaryAmount is an amount of minor units (e.g. cents) in a specific currency
type MonetaryAmount struct {
	value    int64
	currency Currency
}

// NewMonetaryAmount returns a MonetaryAmount of value minor units
func NewMonetaryAmount(value int64, currency Currency) MonetaryAmount {
	return MonetaryAmount{value: value, currency: currency}
}

// ZeroAmount returns an amount of zero in the given currency
func ZeroAmount(currency Currency) MonetaryAmount {
	return MonetaryAmount{currency: currency}
}

// Value returns the amount in minor units
func (m MonetaryAmount) Value() int64 {
	return m.value
}

// Currency returns the currency of the amount
func (m MonetaryAmount) Currency() Currency {
	return m.currency
}

// Add returns the sum of both amounts or ErrAmountOutOfRange when the sum does not fit in an int64
func (m MonetaryAmount) Add(other MonetaryAmount) (MonetaryAmount, error) {
	if !m.currency.Equals(other.currency) {
		return MonetaryAmount{}, ErrCurrencyMismatch
	}

	sum := m.value + other.value
	if (other.value > 0 && sum < m.value) || (other.value < 0 && sum > m.value) {
		return MonetaryAmount{}, ErrAmountOutOfRange
	}

	return MonetaryAmount{value: sum, currency: m.currency}, nil
}

// Subtract returns the difference of both amounts or ErrAmountOutOfRange when the difference does not fit in an int64
func (m MonetaryAmount) Subtract(other MonetaryAmount) (MonetaryAmount, error) {
	if !m.currency.Equals(other.currency) {
		return MonetaryAmount{}, ErrCurrencyMismatch
	}

	difference := m.value - other.value
	if (other.value > 0 && difference > m.value) || (other.value < 0 && difference < m.value) {
		return MonetaryAmount{}, ErrAmountOutOfRange
	}

	return MonetaryAmount{value: difference, currency: m.currency}, nil
}

// Exceeds returns true if the amount is strictly greater than other
func (m MonetaryAmount) Exceeds(other MonetaryAmount) (bool, error) {
	if !m.currency.Equals(other.currency) {
		return false, ErrCurrencyMismatch
	}

	return m.value > other.value, nil
}

// Negate returns the amount with the opposite sign
func (m MonetaryAmount) Negate() MonetaryAmount {
	return MonetaryAmount{value: -m.value, currency: m.currency}
}

// IsNegative returns true if the amount is lower than zero
func (m MonetaryAmount) IsNegative() bool {
	return m.value < 0
}

// Decimal returns the amount in major units
func (m MonetaryAmount) Decimal() decimal.Decimal {
	return decimal.New(m.value, minorUnitExponent)
}

// String returns a human readable representation like "12.50 USD"
func (m MonetaryAmount) String() string {
	return m.Decimal().StringFixed(-minorUnitExponent) + " " + m.currency.String()
}
