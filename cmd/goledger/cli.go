package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/hellofresh/goledger/banking"
)

// errUsage occurs when a command is called with the wrong arguments
var errUsage = errors.New("invalid arguments, run goledger without arguments for usage")

type cli struct {
	district *banking.FinancialDistrict
	out      io.Writer
}

func (c *cli) run(ctx context.Context, command string, args []string) error {
	if command == "setup-all" {
		return c.district.SetupAll(ctx)
	}

	if len(args) == 0 {
		return errUsage
	}
	bank, err := c.district.FindBank(args[0])
	if err != nil {
		return err
	}
	args = args[1:]

	switch command {
	case "open":
		return handle(ctx, bank, args, 1, 2, func() (banking.Command, error) {
			return banking.OpenAccountFromMap(map[string]interface{}{
				"accountNumber": args[0],
				"holder":        optionalArg(args, 1),
			})
		})
	case "set-limit":
		return handle(ctx, bank, args, 2, 2, func() (banking.Command, error) {
			return banking.SetOverdraftLimitFromMap(map[string]interface{}{
				"accountNumber": args[0],
				"limit":         args[1],
			})
		})
	case "transfer":
		return handle(ctx, bank, args, 3, 3, func() (banking.Command, error) {
			return banking.TransferMoneyFromMap(map[string]interface{}{
				"from":   args[0],
				"to":     args[1],
				"amount": args[2],
			})
		})
	case "block":
		return handle(ctx, bank, args, 1, 2, func() (banking.Command, error) {
			return banking.BlockAccountFromMap(map[string]interface{}{
				"accountNumber": args[0],
				"reason":        optionalArg(args, 1),
			})
		})
	case "unblock":
		return handle(ctx, bank, args, 1, 2, func() (banking.Command, error) {
			return banking.UnblockAccountFromMap(map[string]interface{}{
				"accountNumber": args[0],
				"reason":        optionalArg(args, 1),
			})
		})
	case "close":
		return handle(ctx, bank, args, 1, 1, func() (banking.Command, error) {
			return banking.CloseAccountFromMap(map[string]interface{}{"accountNumber": args[0]})
		})
	case "list":
		if len(args) != 0 {
			return errUsage
		}
		return c.list(ctx, bank)
	case "history":
		if len(args) != 1 {
			return errUsage
		}
		return c.history(ctx, bank, banking.AccountNumber(args[0]))
	}

	return errors.Errorf("unknown command %q", command)
}

func handle(
	ctx context.Context,
	bank *banking.Bank,
	args []string,
	minArgs, maxArgs int,
	newCommand func() (banking.Command, error),
) error {
	if len(args) < minArgs || len(args) > maxArgs {
		return errUsage
	}

	command, err := newCommand()
	if err != nil {
		return err
	}

	return bank.Handle(ctx, command)
}

func (c *cli) list(ctx context.Context, bank *banking.Bank) error {
	accounts, err := bank.FindAllAccounts(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tHOLDER\tBALANCE\tOVERDRAFT LIMIT\tBLOCKED")
	for _, account := range accounts {
		holder, err := account.Holder(ctx)
		if err != nil {
			return err
		}
		balance, err := account.Balance(ctx)
		if err != nil {
			return err
		}
		limit, err := account.OverdraftLimit(ctx)
		if err != nil {
			return err
		}
		blocked, err := account.IsBlocked(ctx)
		if err != nil {
			return err
		}

		name := "-"
		if holder != nil {
			name = *holder
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", account.Number(), name, balance, limit.Amount(), blocked)
	}

	return w.Flush()
}

func (c *cli) history(ctx context.Context, bank *banking.Bank, number banking.AccountNumber) error {
	account, err := bank.FindAccount(ctx, number)
	if err != nil {
		return err
	}

	events, err := account.Events(ctx)
	if err != nil {
		return err
	}

	registry := banking.NewEventRegistry()
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tEVENT\tDETAILS")
	for _, event := range events {
		eventType, err := registry.EventType(event)
		if err != nil {
			return err
		}

		date, details := describe(event, number)
		fmt.Fprintf(w, "%s\t%s\t%s\n", date.Format("2006-01-02 15:04:05"), eventType, details)
	}

	return w.Flush()
}

func describe(event banking.Event, number banking.AccountNumber) (banking.TransactionDate, string) {
	switch e := event.(type) {
	case banking.AccountOpened:
		if e.Holder != nil {
			return e.Date, "holder " + *e.Holder
		}
		return e.Date, ""
	case banking.OverdraftLimitSet:
		return e.Date, "limit " + e.Limit.Amount().String()
	case banking.AccountBlocked:
		return e.Date, reason(e.Reason)
	case banking.AccountUnblocked:
		return e.Date, reason(e.Reason)
	case banking.AccountClosed:
		return e.Date, ""
	case banking.MoneyTransferred:
		if e.From.Equals(number) {
			return e.Date, fmt.Sprintf("-%s to %s", e.Amount, e.To)
		}
		return e.Date, fmt.Sprintf("+%s from %s", e.Amount, e.From)
	}

	return 0, ""
}

func reason(value *string) string {
	if value == nil {
		return ""
	}

	return strings.TrimSpace(*value)
}

func optionalArg(args []string, i int) interface{} {
	if i < len(args) {
		return args[i]
	}

	return nil
}

// exitCode maps the outcome of a command to the exit status of the process
func exitCode(err error) int {
	switch {
	case err == errUsage:
		return 2
	case errors.Is(err, banking.ErrBankNotFound):
		return 3
	}

	switch banking.StatusCode(err) {
	case http.StatusOK:
		return 0
	case http.StatusBadRequest:
		return 2
	case http.StatusNotFound:
		return 3
	case http.StatusForbidden:
		return 4
	case http.StatusConflict:
		return 5
	}

	return 1
}
