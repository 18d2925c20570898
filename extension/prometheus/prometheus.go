package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hellofresh/goledger"
)

const namespace = "goledger"

// Ensure that we satisfy the goledger.Metrics interface
var _ goledger.Metrics = &Metrics{}

// Metrics is an object for exposing prometheus metrics
type Metrics struct {
	commandCounter  *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	replayedEvents  *prometheus.HistogramVec

	notificationCounter *prometheus.CounterVec
}

// NewMetrics instantiate and return an object of Metrics
func NewMetrics() *Metrics {
	return &Metrics{
		// commandCounter is used to expose 'command_count' metric
		commandCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "command_count",
				Help:      "counter for number of commands handled",
			},
			[]string{"command", "success"},
		),
		// commandDuration is used to expose 'command_duration_seconds' metrics
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "command_duration_seconds",
				Help:      "histogram of command handling latencies",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"command", "success"},
		),
		// replayedEvents is used to expose 'replayed_events' metrics
		replayedEvents: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "replayed_events",
				Help:      "histogram of the number of events folded per stream replay",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"all_streams"},
		),
		// notificationCounter is used to expose 'notification_count' metric
		notificationCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notification_count",
				Help:      "counter for number of committed event notifications received",
			},
			[]string{"source", "event_type"},
		),
	}
}

// RegisterMetrics registers all collectors with the registry
func (m *Metrics) RegisterMetrics(registry prometheus.Registerer) error {
	err := registry.Register(m.commandCounter)
	if err != nil {
		return err
	}

	err = registry.Register(m.commandDuration)
	if err != nil {
		return err
	}

	err = registry.Register(m.replayedEvents)
	if err != nil {
		return err
	}

	return registry.Register(m.notificationCounter)
}

// CommandHandled counts the command and observes its duration
func (m *Metrics) CommandHandled(command string, duration time.Duration, err error) {
	labels := prometheus.Labels{"command": command, "success": strconv.FormatBool(err == nil)}

	m.commandCounter.With(labels).Inc()
	m.commandDuration.With(labels).Observe(duration.Seconds())
}

// StreamReplayed observes the number of events that were replayed.
// Streams are not used as a label to keep the cardinality bounded.
func (m *Metrics) StreamReplayed(streamName goledger.StreamName, eventCount int) {
	labels := prometheus.Labels{"all_streams": strconv.FormatBool(streamName == goledger.AllStreams)}
	m.replayedEvents.With(labels).Observe(float64(eventCount))
}

// NotificationReceived counts a notification of a committed event received from source (amqp or postgres)
func (m *Metrics) NotificationReceived(source, eventType string) {
	m.notificationCounter.With(prometheus.Labels{"source": source, "event_type": eventType}).Inc()
}
