//go:build unit

package banking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellofresh/goledger/banking"
)

func TestOpenAccountFromMap(t *testing.T) {
	t.Run("with holder", func(t *testing.T) {
		command, err := banking.OpenAccountFromMap(map[string]interface{}{
			"accountNumber": " A-1 ",
			"holder":        "Alice",
		})

		require.NoError(t, err)
		assert.Equal(t, banking.OpenAccountCommand{AccountNumber: "A-1", Holder: "Alice"}, command)
		assert.Equal(t, "open_account", command.CommandName())
	})

	t.Run("without holder", func(t *testing.T) {
		command, err := banking.OpenAccountFromMap(map[string]interface{}{"accountNumber": "A-1", "holder": nil})

		require.NoError(t, err)
		assert.Equal(t, "", command.Holder)
	})

	t.Run("missing account number", func(t *testing.T) {
		_, err := banking.OpenAccountFromMap(map[string]interface{}{"holder": "Alice"})

		assert.Equal(t, &banking.ValidationError{Field: "accountNumber", Reason: "is required"}, err)
	})

	t.Run("holder of the wrong type", func(t *testing.T) {
		_, err := banking.OpenAccountFromMap(map[string]interface{}{"accountNumber": "A-1", "holder": 12})

		assert.IsType(t, &banking.ValidationError{}, err)
	})
}

func TestSetOverdraftLimitFromMap(t *testing.T) {
	testCases := []struct {
		title    string
		limit    interface{}
		expected int64
	}{
		{"int", 100, 100},
		{"int64", int64(100), 100},
		{"whole float", float64(100), 100},
		{"numeric string", " 100 ", 100},
		{"zero", 0, 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.title, func(t *testing.T) {
			command, err := banking.SetOverdraftLimitFromMap(map[string]interface{}{
				"accountNumber": "A",
				"limit":         testCase.limit,
			})

			require.NoError(t, err)
			assert.Equal(t, banking.SetOverdraftLimitCommand{AccountNumber: "A", Limit: testCase.expected}, command)
		})
	}

	invalidCases := []struct {
		title  string
		limit  interface{}
		reason string
	}{
		{"missing", nil, "is required"},
		{"negative", -1, "may not be negative"},
		{"fraction", 1.5, "must be a whole number"},
		{"text", "a lot", "must be a whole number"},
		{"bool", true, "unsupported type bool"},
	}

	for _, testCase := range invalidCases {
		t.Run(testCase.title, func(t *testing.T) {
			_, err := banking.SetOverdraftLimitFromMap(map[string]interface{}{
				"accountNumber": "A",
				"limit":         testCase.limit,
			})

			assert.Equal(t, &banking.ValidationError{Field: "limit", Reason: testCase.reason}, err)
		})
	}
}

func TestBlockAndUnblockAccountFromMap(t *testing.T) {
	block, err := banking.BlockAccountFromMap(map[string]interface{}{"accountNumber": "A", "reason": "fraud"})
	require.NoError(t, err)
	assert.Equal(t, banking.BlockAccountCommand{AccountNumber: "A", Reason: "fraud"}, block)

	unblock, err := banking.UnblockAccountFromMap(map[string]interface{}{"accountNumber": "A"})
	require.NoError(t, err)
	assert.Equal(t, banking.UnblockAccountCommand{AccountNumber: "A"}, unblock)

	_, err = banking.BlockAccountFromMap(map[string]interface{}{"accountNumber": ""})
	assert.IsType(t, &banking.ValidationError{}, err)
}

func TestCloseAccountFromMap(t *testing.T) {
	command, err := banking.CloseAccountFromMap(map[string]interface{}{"accountNumber": "A"})
	require.NoError(t, err)
	assert.Equal(t, banking.CloseAccountCommand{AccountNumber: "A"}, command)

	_, err = banking.CloseAccountFromMap(map[string]interface{}{})
	assert.IsType(t, &banking.ValidationError{}, err)
}

func TestTransferMoneyFromMap(t *testing.T) {
	t.Run("currency defaults to empty", func(t *testing.T) {
		command, err := banking.TransferMoneyFromMap(map[string]interface{}{
			"from":   "A",
			"to":     "B",
			"amount": float64(250),
		})

		require.NoError(t, err)
		assert.Equal(t, banking.TransferMoneyCommand{From: "A", To: "B", Amount: 250}, command)
	})

	t.Run("explicit currency", func(t *testing.T) {
		command, err := banking.TransferMoneyFromMap(map[string]interface{}{
			"from":     "A",
			"to":       "B",
			"amount":   "250",
			"currency": "EUR",
		})

		require.NoError(t, err)
		assert.Equal(t, banking.Currency("EUR"), command.Currency)
	})

	invalidCases := []struct {
		title  string
		values map[string]interface{}
		field  string
	}{
		{"no sender", map[string]interface{}{"to": "B", "amount": 1}, "from"},
		{"no recipient", map[string]interface{}{"from": "A", "amount": 1}, "to"},
		{"no amount", map[string]interface{}{"from": "A", "to": "B"}, "amount"},
		{"negative amount", map[string]interface{}{"from": "A", "to": "B", "amount": -5}, "amount"},
		{"invalid currency", map[string]interface{}{"from": "A", "to": "B", "amount": 1, "currency": "euro"}, "currency"},
	}

	for _, testCase := range invalidCases {
		t.Run(testCase.title, func(t *testing.T) {
			_, err := banking.TransferMoneyFromMap(testCase.values)

			var validationErr *banking.ValidationError
			if assert.ErrorAs(t, err, &validationErr) {
				assert.Equal(t, testCase.field, validationErr.Field)
			}
		})
	}
}
