//go:build unit

package banking

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	t.Run("events are reduced in order", func(t *testing.T) {
		events := []Event{
			AccountOpened{AccountNumber: "A"},
			AccountBlocked{AccountNumber: "A"},
			AccountClosed{AccountNumber: "A"},
		}

		var seen []string
		_, err := Fold[int](events, 0, func(count int, event Event) (int, error) {
			switch event.(type) {
			case AccountOpened:
				seen = append(seen, "opened")
			case AccountBlocked:
				seen = append(seen, "blocked")
			case AccountClosed:
				seen = append(seen, "closed")
			}
			return count + 1, nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"opened", "blocked", "closed"}, seen)
	})

	t.Run("folding stops at the first error", func(t *testing.T) {
		expectedErr := errors.New("failure")
		calls := 0

		_, err := Fold[int](make([]Event, 3), 0, func(count int, event Event) (int, error) {
			calls++
			return count, expectedErr
		})

		assert.Equal(t, expectedErr, err)
		assert.Equal(t, 1, calls)
	})
}

func TestExistence(t *testing.T) {
	testCases := []struct {
		title    string
		events   []Event
		expected bool
	}{
		{"never opened", nil, false},
		{"opened", []Event{AccountOpened{}}, true},
		{"closed", []Event{AccountOpened{}, AccountClosed{}}, false},
		{"reopened", []Event{AccountOpened{}, AccountClosed{}, AccountOpened{}}, true},
		{"other events do not change existence", []Event{AccountOpened{}, AccountBlocked{}, MoneyTransferred{}}, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.title, func(t *testing.T) {
			exists, err := Fold[bool](testCase.events, false, existence)

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, exists)
		})
	}
}

func TestBlocking(t *testing.T) {
	blocked, err := Fold[bool]([]Event{AccountBlocked{}, AccountUnblocked{}, AccountBlocked{}}, false, blocking)
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = Fold[bool]([]Event{AccountBlocked{}, AccountUnblocked{}}, false, blocking)
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestBalance(t *testing.T) {
	events := []Event{
		AccountOpened{AccountNumber: "A"},
		MoneyTransferred{From: "B", To: "A", Amount: NewMonetaryAmount(700, "USD")},
		MoneyTransferred{From: "A", To: "C", Amount: NewMonetaryAmount(200, "USD")},
		MoneyTransferred{From: "B", To: "C", Amount: NewMonetaryAmount(999, "USD")},
		MoneyTransferred{From: "A", To: "B", Amount: NewMonetaryAmount(600, "USD")},
	}

	amount, err := Fold[MonetaryAmount](events, ZeroAmount("USD"), balance("A"))

	require.NoError(t, err)
	assert.Equal(t, NewMonetaryAmount(-100, "USD"), amount)

	t.Run("currency mismatch", func(t *testing.T) {
		_, err := Fold[MonetaryAmount](events, ZeroAmount("EUR"), balance("A"))

		assert.Equal(t, &InconsistentEventError{Event: events[1], Reason: ErrCurrencyMismatch}, err)
		assert.False(t, IsDomainError(err))
	})

	t.Run("balance out of range", func(t *testing.T) {
		credits := []Event{
			MoneyTransferred{From: "B", To: "A", Amount: NewMonetaryAmount(math.MaxInt64, "USD")},
			MoneyTransferred{From: "B", To: "A", Amount: NewMonetaryAmount(1, "USD")},
		}

		_, err := Fold[MonetaryAmount](credits, ZeroAmount("USD"), balance("A"))

		assert.Equal(t, &InconsistentEventError{Event: credits[1], Reason: ErrAmountOutOfRange}, err)
	})
}

func TestReduceAccount(t *testing.T) {
	alice := "Alice"
	bob := "Bob"
	limit, err := NewOverdraftLimit(NewMonetaryAmount(500, "USD"))
	require.NoError(t, err)

	events := []Event{
		AccountOpened{AccountNumber: "A", Holder: &alice},
		OverdraftLimitSet{AccountNumber: "A", Limit: limit},
		MoneyTransferred{From: "A", To: "B", Amount: NewMonetaryAmount(300, "USD")},
		AccountBlocked{AccountNumber: "A"},
		AccountClosed{AccountNumber: "A"},
		AccountOpened{AccountNumber: "A", Holder: &bob},
	}

	state, err := Fold[accountState](events, newAccountState("A", "USD"), reduceAccount)

	require.NoError(t, err)
	assert.True(t, state.exists)
	assert.True(t, state.blocked)
	assert.Equal(t, limit, state.limit)
	assert.Equal(t, NewMonetaryAmount(-300, "USD"), state.balance)
	assert.Equal(t, &alice, state.holder.holder)
}

func TestTrackOpenAccounts(t *testing.T) {
	events := []Event{
		AccountOpened{AccountNumber: "A"},
		AccountOpened{AccountNumber: "B"},
		AccountOpened{AccountNumber: "C"},
		MoneyTransferred{From: "A", To: "B"},
		AccountClosed{AccountNumber: "A"},
		AccountOpened{AccountNumber: "A"},
		AccountClosed{AccountNumber: "B"},
	}

	accounts, err := Fold[openAccounts](events, openAccounts{}, trackOpenAccounts)

	require.NoError(t, err)
	assert.Equal(t, openAccounts{"C", "A"}, accounts)
}
