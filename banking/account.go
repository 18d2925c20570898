package banking

import (
	"context"

	"github.com/hellofresh/goledger"
)

// Account is a bank account whose state is derived by replaying its event stream.
// An Account is only handed out for account numbers that exist at the time of construction,
// every operation replays the stream again.
type Account struct {
	number AccountNumber
	bank   *Bank
}

// Number returns the account number
func (a *Account) Number() AccountNumber {
	return a.number
}

// Currency returns the currency of the account
func (a *Account) Currency() Currency {
	return a.bank.currency
}

// Events returns the decoded event history of the account
func (a *Account) Events(ctx context.Context) ([]Event, error) {
	return a.bank.loadEvents(ctx, a.number.StreamName())
}

// Holder returns the holder the account was opened for or nil when no holder was provided
func (a *Account) Holder(ctx context.Context) (*string, error) {
	events, err := a.Events(ctx)
	if err != nil {
		return nil, err
	}

	state, err := Fold[holderState](events, holderState{}, holder)
	return state.holder, err
}

// Balance returns the sum of all incoming minus all outgoing transfers
func (a *Account) Balance(ctx context.Context) (MonetaryAmount, error) {
	events, err := a.Events(ctx)
	if err != nil {
		return MonetaryAmount{}, err
	}

	return Fold[MonetaryAmount](events, ZeroAmount(a.bank.currency), balance(a.number))
}

// OverdraftLimit returns the current overdraft limit of the account
func (a *Account) OverdraftLimit(ctx context.Context) (OverdraftLimit, error) {
	events, err := a.Events(ctx)
	if err != nil {
		return OverdraftLimit{}, err
	}

	return Fold[OverdraftLimit](events, ZeroOverdraftLimit(a.bank.currency), overdraftLimit)
}

// IsBlocked returns true if the account is currently blocked
func (a *Account) IsBlocked(ctx context.Context) (bool, error) {
	events, err := a.Events(ctx)
	if err != nil {
		return false, err
	}

	return Fold[bool](events, false, blocking)
}

// SetOverdraftLimit replaces the overdraft limit of the account
func (a *Account) SetOverdraftLimit(ctx context.Context, limit OverdraftLimit) error {
	if !limit.Amount().Currency().Equals(a.bank.currency) {
		return ErrCurrencyMismatch
	}

	if _, err := a.bank.requireAccount(ctx, a.number); err != nil {
		return err
	}

	return a.bank.commit(ctx, a.number.StreamName(), OverdraftLimitSet{
		AccountNumber: a.number,
		Limit:         limit,
		Date:          a.bank.today(),
	}, goledger.GenerateUUID())
}

// Block blocks the account, a blocked account can neither send nor receive money
func (a *Account) Block(ctx context.Context, reason string) error {
	if a.bank.IsOwnAccount(a.number) {
		return ErrAccountIsBankOwn
	}

	state, err := a.bank.requireAccount(ctx, a.number)
	if err != nil {
		return err
	}
	if state.blocked {
		return ErrAccountAlreadyBlocked
	}

	return a.bank.commit(ctx, a.number.StreamName(), AccountBlocked{
		AccountNumber: a.number,
		Date:          a.bank.today(),
		Reason:        optionalString(reason),
	}, goledger.GenerateUUID())
}

// Unblock lifts the block of the account
func (a *Account) Unblock(ctx context.Context, reason string) error {
	state, err := a.bank.requireAccount(ctx, a.number)
	if err != nil {
		return err
	}
	if !state.blocked {
		return ErrAccountNotBlocked
	}

	return a.bank.commit(ctx, a.number.StreamName(), AccountUnblocked{
		AccountNumber: a.number,
		Date:          a.bank.today(),
		Reason:        optionalString(reason),
	}, goledger.GenerateUUID())
}

// Close closes the account, the balance of the account is not required to be zero
func (a *Account) Close(ctx context.Context) error {
	if a.bank.IsOwnAccount(a.number) {
		return ErrAccountIsBankOwn
	}

	if _, err := a.bank.requireAccount(ctx, a.number); err != nil {
		return err
	}

	return a.bank.commit(ctx, a.number.StreamName(), AccountClosed{
		AccountNumber: a.number,
		Date:          a.bank.today(),
	}, goledger.GenerateUUID())
}

// TransferMoney sends the amount to the recipient account.
//
// The transfer is recorded as a single MoneyTransferred event that is committed to the stream of the sender
// and afterwards to the stream of the recipient. Both commits accept any stream version and are not atomic,
// when the second commit fails the sender is debited without the recipient being credited.
func (a *Account) TransferMoney(ctx context.Context, to AccountNumber, amount MonetaryAmount) error {
	if amount.IsNegative() {
		return &ValidationError{Field: "amount", Reason: "may not be negative"}
	}

	sender, err := a.bank.requireAccount(ctx, a.number)
	if err != nil {
		return err
	}
	if sender.blocked {
		return ErrAccountIsBlocked
	}

	recipient, err := a.bank.requireAccount(ctx, to)
	if err != nil {
		return err
	}
	if recipient.blocked {
		return ErrAccountIsBlocked
	}

	if to.Equals(a.number) {
		return ErrCannotSendMoneyToSelf
	}

	result, err := sender.balance.Subtract(amount)
	if err != nil {
		return err
	}
	covered, err := sender.limit.Covers(result)
	if err != nil {
		return err
	}
	if !covered {
		return ErrOverdraftLimitExceeded
	}
	if _, err := recipient.balance.Add(amount); err != nil {
		return err
	}

	event := MoneyTransferred{
		From:   a.number,
		To:     to,
		Amount: amount,
		Date:   a.bank.today(),
	}
	transferID := goledger.GenerateUUID()

	if err := a.bank.commit(ctx, a.number.StreamName(), event, transferID); err != nil {
		return err
	}

	if err := a.bank.commit(ctx, to.StreamName(), event, transferID); err != nil {
		a.bank.logger.Error("money transfer was only committed to the stream of the sender", func(e goledger.LoggerEntry) {
			e.Error(err)
			e.String("transfer_id", transferID.String())
			e.String("from", a.number.String())
			e.String("to", to.String())
			e.Int64("amount", amount.Value())
		})

		return err
	}

	return nil
}
