// Package health tracks advisory backend connectivity.
package health

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/footbot/internal/logger"
	"github.com/ppiankov/footbot/internal/model"
)

// Prober performs one health probe. It must not fail.
type Prober interface {
	CheckHealth(ctx context.Context) model.HealthReport
}

// Monitor owns the checking -> healthy|unhealthy state.
//
// Probes run independently and may overlap; the last one to finish sets the
// state, even if it started earlier. The state is advisory only.
type Monitor struct {
	prober   Prober
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	onChange func(model.HealthReport)

	report atomic.Pointer[model.HealthReport]
}

// DefaultProbeTimeout bounds a probe when WithProbeTimeout is not given
const DefaultProbeTimeout = 10 * time.Second

// Option configures a Monitor
type Option func(*Monitor)

// WithLogger sets the monitor logger
func WithLogger(l *zap.Logger) Option {
	return func(m *Monitor) { m.logger = logger.OrNop(l) }
}

// WithProbeTimeout bounds each probe. Non-positive values keep the default.
func WithProbeTimeout(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// OnChange registers a callback invoked when the status changes. It runs on
// the goroutine that recorded the change.
func OnChange(fn func(model.HealthReport)) Option {
	return func(m *Monitor) { m.onChange = fn }
}

// NewMonitor creates a monitor in the checking state
func NewMonitor(prober Prober, interval time.Duration, opts ...Option) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	m := &Monitor{
		prober:   prober,
		interval: interval,
		timeout:  DefaultProbeTimeout,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.report.Store(&model.HealthReport{Status: model.HealthChecking})
	return m
}

// Start probes immediately and then on every interval until ctx is done.
// It returns at once; probing happens in the background.
func (m *Monitor) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		go m.probe(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// A slow probe does not delay the next one.
				go m.probe(ctx)
			}
		}
	}()
}

// Probe runs one probe synchronously and returns its report
func (m *Monitor) Probe(ctx context.Context) model.HealthReport {
	return m.probe(ctx)
}

func (m *Monitor) probe(ctx context.Context) model.HealthReport {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	report := m.prober.CheckHealth(ctx)
	m.logger.Debug("health probe finished",
		zap.String("status", string(report.Status)),
		zap.String("message", report.Message))
	m.set(report)
	return report
}

// Observe records the outcome of a query: nil is healthy, anything else unhealthy
func (m *Monitor) Observe(err error) {
	if err == nil {
		m.set(model.HealthReport{Status: model.HealthHealthy})
		return
	}
	m.set(model.HealthReport{Status: model.HealthUnhealthy, Message: err.Error()})
}

// Status returns the current status
func (m *Monitor) Status() model.HealthStatus {
	return m.report.Load().Status
}

// Report returns the last recorded report
func (m *Monitor) Report() model.HealthReport {
	return *m.report.Load()
}

func (m *Monitor) set(report model.HealthReport) {
	prev := m.report.Swap(&report)
	if prev.Status != report.Status {
		m.logger.Info("backend connectivity changed",
			zap.String("from", string(prev.Status)),
			zap.String("to", string(report.Status)))
		if m.onChange != nil {
			m.onChange(report)
		}
	}
}
