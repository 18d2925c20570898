package banking

import (
	"context"
	"time"

	"github.com/hellofresh/goledger"
)

// Handle dispatches the command to the bank or the targeted account
func (b *Bank) Handle(ctx context.Context, command Command) error {
	if command == nil {
		return goledger.InvalidArgumentError("command")
	}

	startedAt := time.Now()
	err := b.handle(ctx, command)
	b.metrics.CommandHandled(command.CommandName(), time.Since(startedAt), err)

	switch {
	case err == nil:
		b.logger.Debug("handled command", func(e goledger.LoggerEntry) {
			e.String("command", command.CommandName())
		})
	case IsDomainError(err):
		b.logger.Info("command was rejected", func(e goledger.LoggerEntry) {
			e.Error(err)
			e.String("command", command.CommandName())
		})
	default:
		b.logger.Error("failed to handle command", func(e goledger.LoggerEntry) {
			e.Error(err)
			e.String("command", command.CommandName())
		})
	}

	return err
}

func (b *Bank) handle(ctx context.Context, command Command) error {
	switch c := command.(type) {
	case OpenAccountCommand:
		_, err := b.OpenAccount(ctx, c.AccountNumber, c.Holder)
		return err
	case SetOverdraftLimitCommand:
		limit, err := NewOverdraftLimit(NewMonetaryAmount(c.Limit, b.currency))
		if err != nil {
			return &ValidationError{Field: "limit", Reason: err.Error()}
		}

		return b.withAccount(ctx, c.AccountNumber, func(account *Account) error {
			return account.SetOverdraftLimit(ctx, limit)
		})
	case BlockAccountCommand:
		return b.withAccount(ctx, c.AccountNumber, func(account *Account) error {
			return account.Block(ctx, c.Reason)
		})
	case UnblockAccountCommand:
		return b.withAccount(ctx, c.AccountNumber, func(account *Account) error {
			return account.Unblock(ctx, c.Reason)
		})
	case CloseAccountCommand:
		return b.withAccount(ctx, c.AccountNumber, func(account *Account) error {
			return account.Close(ctx)
		})
	case TransferMoneyCommand:
		currency := c.Currency
		if currency == "" {
			currency = b.currency
		}

		return b.withAccount(ctx, c.From, func(account *Account) error {
			return account.TransferMoney(ctx, c.To, NewMonetaryAmount(c.Amount, currency))
		})
	}

	return goledger.InvalidArgumentError("command")
}

func (b *Bank) withAccount(ctx context.Context, number AccountNumber, f func(account *Account) error) error {
	account, err := b.FindAccount(ctx, number)
	if err != nil {
		return err
	}

	return f(account)
}
