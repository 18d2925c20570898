package banking

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/hellofresh/goledger"
)

// Bank owns the accounts of a single currency stored in one event store.
// The bank itself is not event sourced, it replays the streams of its accounts on every call.
type Bank struct {
	id       string
	currency Currency
	store    goledger.EventStore
	registry *EventRegistry
	logger   goledger.Logger
	metrics  goledger.Metrics
}

// NewBank returns a new Bank, the id of the bank is also the number of the bank's own account
func NewBank(
	id string,
	currency Currency,
	store goledger.EventStore,
	registry *EventRegistry,
	logger goledger.Logger,
	metrics goledger.Metrics,
) (*Bank, error) {
	switch {
	case id == "":
		return nil, goledger.InvalidArgumentError("id")
	case currency == "":
		return nil, goledger.InvalidArgumentError("currency")
	case store == nil:
		return nil, goledger.InvalidArgumentError("store")
	case registry == nil:
		return nil, goledger.InvalidArgumentError("registry")
	}
	if logger == nil {
		logger = goledger.NopLogger
	}
	if metrics == nil {
		metrics = goledger.NopMetrics
	}

	return &Bank{
		id:       id,
		currency: currency,
		store:    store,
		registry: registry,
		logger: logger.WithFields(func(e goledger.LoggerEntry) {
			e.String("bank", id)
		}),
		metrics: metrics,
	}, nil
}

// ID returns the identifier of the bank
func (b *Bank) ID() string {
	return b.id
}

// Currency returns the currency of all accounts of the bank
func (b *Bank) Currency() Currency {
	return b.currency
}

// OwnAccountNumber returns the reserved number of the bank's own account
func (b *Bank) OwnAccountNumber() AccountNumber {
	return AccountNumber(b.id)
}

// IsOwnAccount returns true if number is the reserved number of the bank's own account
func (b *Bank) IsOwnAccount(number AccountNumber) bool {
	return number.Equals(b.OwnAccountNumber())
}

// Setup creates the storage of the bank's event store
func (b *Bank) Setup(ctx context.Context) error {
	return b.store.Setup(ctx)
}

// OpenAccount opens a new account, an account number that was closed before can be opened again
func (b *Bank) OpenAccount(ctx context.Context, number AccountNumber, holder string) (*Account, error) {
	events, err := b.loadEvents(ctx, number.StreamName())
	if err != nil {
		return nil, err
	}

	exists, err := Fold[bool](events, false, existence)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAccountAlreadyExists
	}

	err = b.commit(ctx, number.StreamName(), AccountOpened{
		AccountNumber: number,
		Holder:        optionalString(holder),
		Date:          b.today(),
	}, goledger.GenerateUUID())
	if err != nil {
		return nil, err
	}

	return &Account{number: number, bank: b}, nil
}

// FindAccount returns the account or ErrAccountNotFound if no account with the number is open
func (b *Bank) FindAccount(ctx context.Context, number AccountNumber) (*Account, error) {
	if _, err := b.requireAccount(ctx, number); err != nil {
		return nil, err
	}

	return &Account{number: number, bank: b}, nil
}

// FindAllAccounts returns all open accounts ordered by the moment they were first opened.
// All events of the bank are replayed so this should not be used on a hot path.
func (b *Bank) FindAllAccounts(ctx context.Context) ([]*Account, error) {
	events, err := b.loadEvents(ctx, goledger.AllStreams)
	if err != nil {
		return nil, err
	}

	numbers, err := Fold[openAccounts](events, openAccounts{}, trackOpenAccounts)
	if err != nil {
		return nil, err
	}

	accounts := make([]*Account, len(numbers))
	for i, number := range numbers {
		accounts[i] = &Account{number: number, bank: b}
	}

	return accounts, nil
}

// openAccounts is the ordered set of account numbers that are currently open
type openAccounts []AccountNumber

func trackOpenAccounts(accounts openAccounts, event Event) (openAccounts, error) {
	switch e := event.(type) {
	case AccountOpened:
		for _, number := range accounts {
			if number.Equals(e.AccountNumber) {
				return accounts, nil
			}
		}

		return append(accounts, e.AccountNumber), nil
	case AccountClosed:
		remaining := make(openAccounts, 0, len(accounts))
		for _, number := range accounts {
			if !number.Equals(e.AccountNumber) {
				remaining = append(remaining, number)
			}
		}

		return remaining, nil
	}

	return accounts, nil
}

// requireAccount returns the replayed state of the account or ErrAccountNotFound
func (b *Bank) requireAccount(ctx context.Context, number AccountNumber) (accountState, error) {
	events, err := b.loadEvents(ctx, number.StreamName())
	if err != nil {
		return accountState{}, err
	}

	state, err := Fold[accountState](events, newAccountState(number, b.currency), reduceAccount)
	if err != nil {
		return accountState{}, err
	}
	if !state.exists {
		return accountState{}, ErrAccountNotFound
	}

	return state, nil
}

// loadEvents loads and decodes all events of the stream
func (b *Bank) loadEvents(ctx context.Context, streamName goledger.StreamName) ([]Event, error) {
	stream, err := b.store.Load(ctx, streamName)
	if err != nil {
		return nil, errors.Wrapf(err, "goledger: failed to load stream %s", streamName)
	}
	defer func() {
		if err := stream.Close(); err != nil {
			b.logger.Warn("failed to close event stream", func(e goledger.LoggerEntry) {
				e.Error(err)
				e.String("stream", string(streamName))
			})
		}
	}()

	storedEvents, _, err := goledger.ReadEventStream(stream)
	if err != nil {
		return nil, errors.Wrapf(err, "goledger: failed to read stream %s", streamName)
	}

	events := make([]Event, len(storedEvents))
	for i, storedEvent := range storedEvents {
		if events[i], err = b.registry.Decode(storedEvent.Type, storedEvent.Payload); err != nil {
			b.logger.Error("failed to decode stored event", func(e goledger.LoggerEntry) {
				e.Error(err)
				e.String("stream", string(streamName))
				e.String("event_id", storedEvent.ID.String())
				e.String("event_type", storedEvent.Type)
			})

			return nil, err
		}
	}

	b.metrics.StreamReplayed(streamName, len(events))

	return events, nil
}

// commit encodes the event and appends it to the stream accepting any stream version
func (b *Bank) commit(ctx context.Context, streamName goledger.StreamName, event Event, correlationID goledger.UUID) error {
	eventType, payload, err := b.registry.Encode(event)
	if err != nil {
		return err
	}

	storedEvent := goledger.NewEvent(eventType, payload).
		WithMetadata(goledger.CorrelationKey, correlationID.String())

	if err := b.store.Commit(ctx, streamName, storedEvent, goledger.AnyVersion); err != nil {
		b.logger.Warn("failed to commit event", func(e goledger.LoggerEntry) {
			e.Error(err)
			e.String("stream", string(streamName))
			e.String("event_type", eventType)
		})

		return errors.Wrapf(err, "goledger: failed to commit %s to stream %s", eventType, streamName)
	}

	b.logger.Debug("committed event", func(e goledger.LoggerEntry) {
		e.String("stream", string(streamName))
		e.String("event_type", eventType)
		e.String("event_id", storedEvent.ID.String())
	})

	return nil
}

func (b *Bank) today() TransactionDate {
	return NewTransactionDate(time.Now())
}
