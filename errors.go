package goledger

import (
	"errors"
	"fmt"
)

var (
	// ErrAllStreamsIsReadOnly occurs when a commit to the all-streams view is attempted
	ErrAllStreamsIsReadOnly = errors.New("goledger: the all-streams view cannot be committed to")
	// ErrEmptyEventType occurs when an event without a type is committed
	ErrEmptyEventType = errors.New("goledger: an event must have a type")
)

// InvalidArgumentError indicates that the caller is in error and passed an incorrect value.
type InvalidArgumentError string

func (i InvalidArgumentError) Error() string {
	return "goledger: invalid argument: " + string(i)
}

// ConcurrencyError occurs when the expected version of a stream did not match its actual version
type ConcurrencyError struct {
	StreamName StreamName
	Expected   ExpectedVersion
	Actual     int64
}

func (e *ConcurrencyError) Error() string {
	return fmt.Sprintf(
		"goledger: stream %s was expected to be at version %d but is at version %d",
		e.StreamName,
		e.Expected,
		e.Actual,
	)
}
