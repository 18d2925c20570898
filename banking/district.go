package banking

import (
	"context"
	"errors"
	"sort"
)

// ErrBankNotFound occurs when an unknown bank id is requested from the FinancialDistrict
var ErrBankNotFound = errors.New("goledger: bank does not exist")

// FinancialDistrict is the registry of all configured banks
type FinancialDistrict struct {
	banks map[string]*Bank
}

// NewFinancialDistrict returns a FinancialDistrict containing the given banks
func NewFinancialDistrict(banks ...*Bank) *FinancialDistrict {
	district := &FinancialDistrict{banks: make(map[string]*Bank, len(banks))}
	for _, bank := range banks {
		district.banks[bank.ID()] = bank
	}

	return district
}

// FindBank returns the bank with the given id
func (d *FinancialDistrict) FindBank(id string) (*Bank, error) {
	bank, found := d.banks[id]
	if !found {
		return nil, ErrBankNotFound
	}

	return bank, nil
}

// FindAllBanks returns all banks ordered by id
func (d *FinancialDistrict) FindAllBanks() []*Bank {
	banks := make([]*Bank, 0, len(d.banks))
	for _, bank := range d.banks {
		banks = append(banks, bank)
	}
	sort.Slice(banks, func(i, j int) bool {
		return banks[i].ID() < banks[j].ID()
	})

	return banks
}

// SetupAll sets up the event store of every bank
func (d *FinancialDistrict) SetupAll(ctx context.Context) error {
	for _, bank := range d.FindAllBanks() {
		if err := bank.Setup(ctx); err != nil {
			return err
		}
	}

	return nil
}
