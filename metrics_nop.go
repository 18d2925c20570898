package goledger

import "time"

// NopMetrics is a no-op Metrics implementation used when no metrics are configured
var NopMetrics Metrics = &nopMetrics{}

type nopMetrics struct{}

func (*nopMetrics) CommandHandled(string, time.Duration, error) {}

func (*nopMetrics) StreamReplayed(StreamName, int) {}
