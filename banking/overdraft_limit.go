package banking

// OverdraftLimit is the most negative balance an account is permitted to reach
type OverdraftLimit struct {
	amount MonetaryAmount
}

// NewOverdraftLimit returns an OverdraftLimit allowing the balance to go down to -amount
func NewOverdraftLimit(amount MonetaryAmount) (OverdraftLimit, error) {
	if amount.IsNegative() {
		return OverdraftLimit{}, ErrNegativeOverdraftLimit
	}

	return OverdraftLimit{amount: amount}, nil
}

// ZeroOverdraftLimit returns a limit that does not permit any overdraft
func ZeroOverdraftLimit(currency Currency) OverdraftLimit {
	return OverdraftLimit{amount: ZeroAmount(currency)}
}

// Amount returns the limit as a positive amount
func (l OverdraftLimit) Amount() MonetaryAmount {
	return l.amount
}

// Covers returns true if the resulting balance stays strictly above -limit
func (l OverdraftLimit) Covers(transactionResult MonetaryAmount) (bool, error) {
	return transactionResult.Exceeds(l.amount.Negate())
}
