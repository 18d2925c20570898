package banking

import "time"

// TransactionDate is the UTC unix timestamp (in seconds) at which a transaction happened
type TransactionDate int64

// NewTransactionDate returns the TransactionDate of t
func NewTransactionDate(t time.Time) TransactionDate {
	return TransactionDate(t.UTC().Unix())
}

// Time returns the date as UTC time.Time
func (d TransactionDate) Time() time.Time {
	return time.Unix(int64(d), 0).UTC()
}

// Format returns the textual representation of the date formatted according to layout
func (d TransactionDate) Format(layout string) string {
	return d.Time().Format(layout)
}
