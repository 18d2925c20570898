package banking

import (
	"strings"

	"github.com/google/uuid"

	"github.com/hellofresh/goledger"
)

// accountStreamPrefix namespaces the account streams within a bank's event store
const accountStreamPrefix = "banking:account:"

// AccountNumber uniquely identifies an account within a bank
type AccountNumber string

// NewAccountNumber returns the AccountNumber for the given value
func NewAccountNumber(value string) (AccountNumber, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrInvalidAccountNumber
	}

	return AccountNumber(value), nil
}

// NewRandomAccountNumber generates a new unique AccountNumber
func NewRandomAccountNumber() AccountNumber {
	return AccountNumber(uuid.New().String())
}

// Equals returns true if both numbers are the same
func (n AccountNumber) Equals(other AccountNumber) bool {
	return n == other
}

// String returns the account number
func (n AccountNumber) String() string {
	return string(n)
}

// StreamName returns the name of the event stream of the account
func (n AccountNumber) StreamName() goledger.StreamName {
	return goledger.StreamName(accountStreamPrefix + string(n))
}
