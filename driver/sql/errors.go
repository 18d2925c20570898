package sql

import "errors"

var (
	// ErrTableNameEmpty occurs when a table name could not be generated
	ErrTableNameEmpty = errors.New("goledger: table name could not be empty")
	// ErrNilRows occurs when an event stream is created without rows
	ErrNilRows = errors.New("goledger: an event stream requires rows")
)
