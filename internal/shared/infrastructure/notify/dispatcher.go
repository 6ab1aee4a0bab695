package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

// DispatcherConfig tunes the breaker guarding the notification channel.
type DispatcherConfig struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
	NoticeTimeout    time.Duration
}

// DefaultDispatcherConfig returns the worker defaults.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		NoticeTimeout:    5 * time.Second,
	}
}

// Dispatcher fans notices out through a circuit breaker. When the
// notification channel is down the breaker opens and further notices fail
// fast instead of stalling decision handlers.
type Dispatcher struct {
	notifier Notifier
	breaker  *gobreaker.CircuitBreaker[struct{}]
	config   DispatcherConfig
	logger   *slog.Logger
}

// NewDispatcher creates a breaker-guarded dispatcher.
func NewDispatcher(notifier Notifier, config DispatcherConfig, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	d := &Dispatcher{notifier: notifier, config: config, logger: logger}
	d.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "party-notifications",
		Timeout: config.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("notification breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
	return d
}

// DispatchAll attempts every notice and reports per-notice outcomes. It
// never returns an error: notification failure must not disturb the
// transition that triggered it.
func (d *Dispatcher) DispatchAll(ctx context.Context, notices []Notice) []Outcome {
	outcomes := make([]Outcome, 0, len(notices))
	for _, notice := range notices {
		outcomes = append(outcomes, d.dispatch(ctx, notice))
	}
	return outcomes
}

func (d *Dispatcher) dispatch(ctx context.Context, notice Notice) Outcome {
	_, err := d.breaker.Execute(func() (struct{}, error) {
		nctx, cancel := context.WithTimeout(ctx, d.config.NoticeTimeout)
		defer cancel()
		return struct{}{}, d.notifier.Notify(nctx, notice)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			d.logger.Warn("notification channel open, notice skipped",
				"party", notice.Party,
				"entity_id", notice.EntityID,
			)
		} else {
			d.logger.Warn("notice delivery failed",
				"party", notice.Party,
				"entity_id", notice.EntityID,
				"error", err,
			)
		}
		return Outcome{Party: notice.Party, Delivered: false, Error: err.Error()}
	}

	return Outcome{Party: notice.Party, Delivered: true}
}
