package banking

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound occurs when an operation targets a number without an open account
	ErrAccountNotFound = errors.New("goledger: account does not exist")
	// ErrAccountAlreadyExists occurs when an account is opened with the number of an open account
	ErrAccountAlreadyExists = errors.New("goledger: account already exists")
	// ErrAccountIsBlocked occurs when a transfer touches a blocked sender or recipient
	ErrAccountIsBlocked = errors.New("goledger: account is blocked")
	// ErrAccountAlreadyBlocked occurs when a blocked account is blocked again
	ErrAccountAlreadyBlocked = errors.New("goledger: account is already blocked")
	// ErrAccountNotBlocked occurs when an account that is not blocked is unblocked
	ErrAccountNotBlocked = errors.New("goledger: account is not blocked")
	// ErrAccountIsBankOwn occurs when the bank's own account is blocked or closed
	ErrAccountIsBankOwn = errors.New("goledger: account is owned by the bank")
	// ErrCannotSendMoneyToSelf occurs when the recipient of a transfer is the sender
	ErrCannotSendMoneyToSelf = errors.New("goledger: cannot send money to self")
	// ErrOverdraftLimitExceeded occurs when a transfer would exceed the overdraft limit of the sender
	ErrOverdraftLimitExceeded = errors.New("goledger: amount exceeds the account's overdraft limit")

	// ErrAmountOutOfRange occurs when the result of a transfer cannot be represented in minor units
	ErrAmountOutOfRange = errors.New("goledger: monetary amount is out of range")

	// ErrCurrencyMismatch occurs when amounts of different currencies are combined or compared
	ErrCurrencyMismatch = errors.New("goledger: monetary amounts have different currencies")
	// ErrInvalidCurrency occurs when a currency code is not made up of three upper case letters
	ErrInvalidCurrency = errors.New("goledger: invalid currency code")
	// ErrInvalidAccountNumber occurs when an empty account number is provided
	ErrInvalidAccountNumber = errors.New("goledger: account number may not be empty")
	// ErrNegativeOverdraftLimit occurs when an overdraft limit is created with a negative amount
	ErrNegativeOverdraftLimit = errors.New("goledger: overdraft limit may not be negative")

	domainErrors = []error{
		ErrAccountNotFound,
		ErrAccountAlreadyExists,
		ErrAccountIsBlocked,
		ErrAccountAlreadyBlocked,
		ErrAccountNotBlocked,
		ErrAccountIsBankOwn,
		ErrCannotSendMoneyToSelf,
		ErrOverdraftLimitExceeded,
		ErrAmountOutOfRange,
		ErrCurrencyMismatch,
	}
)

// IsDomainError returns true if err is a recoverable domain outcome
// as opposed to a store, registry or programming failure.
func IsDomainError(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}

	for _, domainErr := range domainErrors {
		if errors.Is(err, domainErr) {
			return true
		}
	}

	return false
}

// ValidationError occurs when a command input is missing or malformed
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("goledger: invalid command input %q: %s", e.Field, e.Reason)
}

// InconsistentEventError occurs when a stored event cannot be applied to the state replayed so far,
// for example a transfer in a currency other than the one of the bank
type InconsistentEventError struct {
	Event  Event
	Reason error
}

func (e *InconsistentEventError) Error() string {
	return fmt.Sprintf("goledger: stored %T cannot be applied: %v", e.Event, e.Reason)
}

// UnknownEventTypeError occurs when a stored event type is not known by the EventRegistry
type UnknownEventTypeError string

func (e UnknownEventTypeError) Error() string {
	return fmt.Sprintf("goledger: cannot resolve event for unfamiliar event type %q", string(e))
}

// UnsupportedEventKindError occurs when a value that is not a banking event is encoded
type UnsupportedEventKindError struct {
	Value interface{}
}

func (e *UnsupportedEventKindError) Error() string {
	return fmt.Sprintf("goledger: cannot resolve event type for unfamiliar event %T", e.Value)
}
