package goledger

import "time"

// Metrics a structured metrics interface
type Metrics interface {
	// CommandHandled is called once a command finished, err is nil when the command succeeded
	CommandHandled(command string, duration time.Duration, err error)
	// StreamReplayed is called each time a stream was folded into state
	StreamReplayed(streamName StreamName, eventCount int)
}
