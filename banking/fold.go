package banking

// Reducer applies a single event to the state
type Reducer[S any] func(state S, event Event) (S, error)

// Fold reduces the events, in order, into a state starting from initial.
// Folding stops at the first error returned by the reducer.
func Fold[S any](events []Event, initial S, reducer Reducer[S]) (S, error) {
	state := initial
	for _, event := range events {
		var err error
		if state, err = reducer(state, event); err != nil {
			return state, err
		}
	}

	return state, nil
}

// existence is true after AccountOpened and false after AccountClosed
func existence(exists bool, event Event) (bool, error) {
	switch event.(type) {
	case AccountOpened:
		return true, nil
	case AccountClosed:
		return false, nil
	}

	return exists, nil
}

// blocking is true after AccountBlocked and false after AccountUnblocked
func blocking(blocked bool, event Event) (bool, error) {
	switch event.(type) {
	case AccountBlocked:
		return true, nil
	case AccountUnblocked:
		return false, nil
	}

	return blocked, nil
}

// overdraftLimit is the last limit that was set
func overdraftLimit(limit OverdraftLimit, event Event) (OverdraftLimit, error) {
	if e, ok := event.(OverdraftLimitSet); ok {
		return e.Limit, nil
	}

	return limit, nil
}

// holder is the holder the account was first opened with
func holder(state holderState, event Event) (holderState, error) {
	if e, ok := event.(AccountOpened); ok && !state.opened {
		return holderState{holder: e.Holder, opened: true}, nil
	}

	return state, nil
}

type holderState struct {
	holder *string
	opened bool
}

// balance returns a Reducer adding incoming and subtracting outgoing transfers of the account.
// A stored transfer that cannot be added to the balance fails the fold with an InconsistentEventError.
func balance(number AccountNumber) Reducer[MonetaryAmount] {
	return func(amount MonetaryAmount, event Event) (MonetaryAmount, error) {
		e, ok := event.(MoneyTransferred)
		if !ok {
			return amount, nil
		}

		var (
			result = amount
			err    error
		)
		switch {
		case e.To.Equals(number):
			result, err = amount.Add(e.Amount)
		case e.From.Equals(number):
			result, err = amount.Subtract(e.Amount)
		}
		if err != nil {
			return amount, &InconsistentEventError{Event: e, Reason: err}
		}

		return result, nil
	}
}

// accountState is the complete state of an account derived from its event stream
type accountState struct {
	exists    bool
	blocked   bool
	limit     OverdraftLimit
	balance   MonetaryAmount
	holder    holderState
	reduceBal Reducer[MonetaryAmount]
}

func newAccountState(number AccountNumber, currency Currency) accountState {
	return accountState{
		limit:     ZeroOverdraftLimit(currency),
		balance:   ZeroAmount(currency),
		reduceBal: balance(number),
	}
}

// reduceAccount applies the event to every derived field of the account
func reduceAccount(state accountState, event Event) (accountState, error) {
	var err error
	if state.exists, err = existence(state.exists, event); err != nil {
		return state, err
	}
	if state.blocked, err = blocking(state.blocked, event); err != nil {
		return state, err
	}
	if state.limit, err = overdraftLimit(state.limit, event); err != nil {
		return state, err
	}
	if state.holder, err = holder(state.holder, event); err != nil {
		return state, err
	}
	if state.balance, err = state.reduceBal(state.balance, event); err != nil {
		return state, err
	}

	return state, nil
}
