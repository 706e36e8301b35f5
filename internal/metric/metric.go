// Package metric keeps in-process Prometheus counters for the command
// surface, the event bus and the menu. The registry is private to the
// process; it is rendered by the developer tools panel and, when an address
// is configured, served over HTTP.
package metric

import (
	"bytes"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "squri"

// Outcome labels for command invocations.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics implements command.Observer and event.Observer.
type Metrics struct {
	registry *prometheus.Registry

	commands        *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	events          *prometheus.CounterVec
	menu            *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_invocations_total",
			Help:      "Command invocations by command and outcome.",
		}, []string{"command", "outcome"}),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Time spent in command handlers.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"command"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Events by name and delivery outcome.",
		}, []string{"event", "outcome"}),
		menu: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_activations_total",
			Help:      "Menu item activations by item id.",
		}, []string{"id"}),
	}
	m.registry.MustRegister(m.commands, m.commandDuration, m.events, m.menu)
	return m
}

// Gatherer exposes the registry for scraping.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// ObserveCommand records one finished invocation.
func (m *Metrics) ObserveCommand(name string, took time.Duration, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.commands.WithLabelValues(name, outcome).Inc()
	m.commandDuration.WithLabelValues(name).Observe(took.Seconds())
}

// ObserveEvent records one event outcome.
func (m *Metrics) ObserveEvent(name, outcome string) {
	m.events.WithLabelValues(name, outcome).Inc()
}

// ObserveMenu records a menu activation.
func (m *Metrics) ObserveMenu(id string) {
	m.menu.WithLabelValues(id).Inc()
}

// Text renders the current values in the Prometheus text format.
func (m *Metrics) Text() (string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	var errs []error
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			errs = append(errs, err)
		}
	}
	return buf.String(), errors.Join(errs...)
}
