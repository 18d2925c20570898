package banking

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type (
	// Command is one of the commands a Bank can handle
	Command interface {
		// CommandName returns the name of the command used for logging and metrics
		CommandName() string
	}

	// OpenAccountCommand opens an account
	OpenAccountCommand struct {
		AccountNumber AccountNumber
		Holder        string
	}

	// SetOverdraftLimitCommand replaces the overdraft limit of an account
	SetOverdraftLimitCommand struct {
		AccountNumber AccountNumber
		Limit         int64
	}

	// BlockAccountCommand blocks an account
	BlockAccountCommand struct {
		AccountNumber AccountNumber
		Reason        string
	}

	// UnblockAccountCommand unblocks an account
	UnblockAccountCommand struct {
		AccountNumber AccountNumber
		Reason        string
	}

	// CloseAccountCommand closes an account
	CloseAccountCommand struct {
		AccountNumber AccountNumber
	}

	// TransferMoneyCommand transfers an amount of minor units from one account to another.
	// An empty Currency defaults to the currency of the bank.
	TransferMoneyCommand struct {
		From     AccountNumber
		To       AccountNumber
		Amount   int64
		Currency Currency
	}
)

// CommandName returns the name of the command
func (OpenAccountCommand) CommandName() string { return "open_account" }

// CommandName returns the name of the command
func (SetOverdraftLimitCommand) CommandName() string { return "set_overdraft_limit" }

// CommandName returns the name of the command
func (BlockAccountCommand) CommandName() string { return "block_account" }

// CommandName returns the name of the command
func (UnblockAccountCommand) CommandName() string { return "unblock_account" }

// CommandName returns the name of the command
func (CloseAccountCommand) CommandName() string { return "close_account" }

// CommandName returns the name of the command
func (TransferMoneyCommand) CommandName() string { return "transfer_money" }

// OpenAccountFromMap builds an OpenAccountCommand from the keys accountNumber and the optional holder
func OpenAccountFromMap(values map[string]interface{}) (OpenAccountCommand, error) {
	number, err := requireAccountNumber(values, "accountNumber")
	if err != nil {
		return OpenAccountCommand{}, err
	}
	holder, err := optionalValue(values, "holder")
	if err != nil {
		return OpenAccountCommand{}, err
	}

	return OpenAccountCommand{AccountNumber: number, Holder: holder}, nil
}

// SetOverdraftLimitFromMap builds a SetOverdraftLimitCommand from the keys accountNumber and limit
func SetOverdraftLimitFromMap(values map[string]interface{}) (SetOverdraftLimitCommand, error) {
	number, err := requireAccountNumber(values, "accountNumber")
	if err != nil {
		return SetOverdraftLimitCommand{}, err
	}
	limit, err := requireNonNegativeInt(values, "limit")
	if err != nil {
		return SetOverdraftLimitCommand{}, err
	}

	return SetOverdraftLimitCommand{AccountNumber: number, Limit: limit}, nil
}

// BlockAccountFromMap builds a BlockAccountCommand from the keys accountNumber and the optional reason
func BlockAccountFromMap(values map[string]interface{}) (BlockAccountCommand, error) {
	number, reason, err := accountNumberAndReason(values)
	if err != nil {
		return BlockAccountCommand{}, err
	}

	return BlockAccountCommand{AccountNumber: number, Reason: reason}, nil
}

// UnblockAccountFromMap builds an UnblockAccountCommand from the keys accountNumber and the optional reason
func UnblockAccountFromMap(values map[string]interface{}) (UnblockAccountCommand, error) {
	number, reason, err := accountNumberAndReason(values)
	if err != nil {
		return UnblockAccountCommand{}, err
	}

	return UnblockAccountCommand{AccountNumber: number, Reason: reason}, nil
}

// CloseAccountFromMap builds a CloseAccountCommand from the key accountNumber
func CloseAccountFromMap(values map[string]interface{}) (CloseAccountCommand, error) {
	number, err := requireAccountNumber(values, "accountNumber")
	if err != nil {
		return CloseAccountCommand{}, err
	}

	return CloseAccountCommand{AccountNumber: number}, nil
}

// TransferMoneyFromMap builds a TransferMoneyCommand from the keys from, to, amount and the optional currency
func TransferMoneyFromMap(values map[string]interface{}) (TransferMoneyCommand, error) {
	from, err := requireAccountNumber(values, "from")
	if err != nil {
		return TransferMoneyCommand{}, err
	}
	to, err := requireAccountNumber(values, "to")
	if err != nil {
		return TransferMoneyCommand{}, err
	}
	amount, err := requireNonNegativeInt(values, "amount")
	if err != nil {
		return TransferMoneyCommand{}, err
	}
	code, err := optionalValue(values, "currency")
	if err != nil {
		return TransferMoneyCommand{}, err
	}

	var currency Currency
	if code != "" {
		if currency, err = NewCurrency(code); err != nil {
			return TransferMoneyCommand{}, &ValidationError{Field: "currency", Reason: "must be a three letter currency code"}
		}
	}

	return TransferMoneyCommand{From: from, To: to, Amount: amount, Currency: currency}, nil
}

func accountNumberAndReason(values map[string]interface{}) (AccountNumber, string, error) {
	number, err := requireAccountNumber(values, "accountNumber")
	if err != nil {
		return "", "", err
	}
	reason, err := optionalValue(values, "reason")
	if err != nil {
		return "", "", err
	}

	return number, reason, nil
}

func requireAccountNumber(values map[string]interface{}, key string) (AccountNumber, error) {
	value, err := optionalValue(values, key)
	if err != nil {
		return "", err
	}

	number, err := NewAccountNumber(value)
	if err != nil {
		return "", &ValidationError{Field: key, Reason: "is required"}
	}

	return number, nil
}

func requireNonNegativeInt(values map[string]interface{}, key string) (int64, error) {
	raw, found := values[key]
	if !found || raw == nil {
		return 0, &ValidationError{Field: key, Reason: "is required"}
	}

	var (
		value int64
		err   error
	)
	switch v := raw.(type) {
	case int:
		value = int64(v)
	case int64:
		value = v
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt64 || v < math.MinInt64 {
			return 0, &ValidationError{Field: key, Reason: "must be a whole number"}
		}
		value = int64(v)
	case string:
		if value, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return 0, &ValidationError{Field: key, Reason: "must be a whole number"}
		}
	default:
		return 0, &ValidationError{Field: key, Reason: fmt.Sprintf("unsupported type %T", raw)}
	}

	if value < 0 {
		return 0, &ValidationError{Field: key, Reason: "may not be negative"}
	}

	return value, nil
}

func optionalValue(values map[string]interface{}, key string) (string, error) {
	raw, found := values[key]
	if !found || raw == nil {
		return "", nil
	}

	value, ok := raw.(string)
	if !ok {
		return "", &ValidationError{Field: key, Reason: fmt.Sprintf("must be a string but got %T", raw)}
	}

	return strings.TrimSpace(value), nil
}
