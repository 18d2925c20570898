package config

import (
	"database/sql"

	"github.com/hellofresh/goledger"
	"github.com/hellofresh/goledger/banking"
	"github.com/hellofresh/goledger/driver/sql/postgres"
	"github.com/hellofresh/goledger/extension/amqp"
)

// NewFinancialDistrict creates a bank backed by its own postgres event table for every configured bank.
// When notifyChannel is not empty the event tables notify the channel of every inserted event.
// When publisher is not nil every committed event is also published.
func NewFinancialDistrict(
	banks []BankConfig,
	db *sql.DB,
	notifyChannel string,
	publisher amqp.Publisher,
	logger goledger.Logger,
	metrics goledger.Metrics,
) (*banking.FinancialDistrict, error) {
	registry := banking.NewEventRegistry()

	district := make([]*banking.Bank, len(banks))
	for i, cfg := range banks {
		postgresStore, err := postgres.NewEventStore(db, cfg.EventTable, logger)
		if err != nil {
			return nil, err
		}
		if notifyChannel != "" {
			if err := postgresStore.EnableNotifications(notifyChannel); err != nil {
				return nil, err
			}
		}

		var store goledger.EventStore = postgresStore

		if publisher != nil {
			if store, err = amqp.NewPublishingEventStore(store, publisher, logger); err != nil {
				return nil, err
			}
		}

		if district[i], err = banking.NewBank(cfg.ID, cfg.Currency, store, registry, logger, metrics); err != nil {
			return nil, err
		}
	}

	return banking.NewFinancialDistrict(district...), nil
}
