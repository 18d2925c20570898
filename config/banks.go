package config

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hellofresh/goledger/banking"
	driverSQL "github.com/hellofresh/goledger/driver/sql"
)

// ErrNoBanks occurs when the bank registry does not contain a single bank
var ErrNoBanks = errors.New("goledger: no banks are configured")

type (
	// BankConfig describes a single bank of the financial district
	BankConfig struct {
		ID         string           `yaml:"-"`
		Currency   banking.Currency `yaml:"currency"`
		EventTable string           `yaml:"eventTable"`
	}

	bankRegistry struct {
		Banks map[string]BankConfig `yaml:"banks"`
	}
)

// LoadBanks reads the bank registry from a YAML file
func LoadBanks(path string) ([]BankConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bank registry %s", path)
	}
	defer file.Close()

	return ParseBanks(file)
}

// ParseBanks reads the bank registry, the banks are returned ordered by id.
//
//	banks:
//	  ACME:
//	    currency: USD
//	    eventTable: events_acme
func ParseBanks(r io.Reader) ([]BankConfig, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var registry bankRegistry
	if err := decoder.Decode(&registry); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to parse bank registry")
	}
	if len(registry.Banks) == 0 {
		return nil, ErrNoBanks
	}

	banks := make([]BankConfig, 0, len(registry.Banks))
	for id, bank := range registry.Banks {
		bank.ID = id

		currency, err := banking.NewCurrency(string(bank.Currency))
		if err != nil {
			return nil, errors.Wrapf(err, "bank %s", id)
		}
		bank.Currency = currency

		if bank.EventTable == "" {
			if bank.EventTable, err = driverSQL.GenerateTableName(id); err != nil {
				return nil, errors.Wrapf(err, "bank %s", id)
			}
		}

		banks = append(banks, bank)
	}

	sort.Slice(banks, func(i, j int) bool {
		return banks[i].ID < banks[j].ID
	})

	return banks, nil
}
