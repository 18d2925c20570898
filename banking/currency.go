package banking

import "strings"

// Currency is a ISO 4217 like currency code, for example "USD"
type Currency string

// NewCurrency returns the Currency for the given code
func NewCurrency(code string) (Currency, error) {
	code = strings.TrimSpace(code)
	if len(code) != 3 {
		return "", ErrInvalidCurrency
	}

	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}

	return Currency(code), nil
}

// Equals returns true if both currencies have the same code
func (c Currency) Equals(other Currency) bool {
	return c == other
}

// String returns the currency code
func (c Currency) String() string {
	return string(c)
}
