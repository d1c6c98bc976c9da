package breaker

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"critter-collector/internal/platform/metrics"
)

// Options tunes a breaker. Zero values fall back to the defaults below.
type Options struct {
	MinRequests  uint32        // requests in the window before the ratio counts
	FailureRatio float64       // open at or above this ratio
	Interval     time.Duration // closed-state count reset
	Timeout      time.Duration // open -> half-open
	HalfOpenMax  uint32
}

func (o Options) withDefaults() Options {
	if o.MinRequests == 0 {
		o.MinRequests = 10
	}
	if o.FailureRatio <= 0 {
		o.FailureRatio = 0.6
	}
	if o.Interval <= 0 {
		o.Interval = time.Minute
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.HalfOpenMax == 0 {
		o.HalfOpenMax = 3
	}
	return o
}

// New returns a breaker that exports its state as
// critter_circuit_breaker_state{name} and logs transitions.
func New[T any](name string, opts Options, log zerolog.Logger) *gobreaker.CircuitBreaker[T] {
	opts = opts.withDefaults()
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: opts.HalfOpenMax,
		Interval:    opts.Interval,
		Timeout:     opts.Timeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			if c.Requests < opts.MinRequests {
				return false
			}
			return float64(c.TotalFailures)/float64(c.Requests) >= opts.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})
}

// Rejected reports whether err came from the breaker itself rather than
// from the protected call.
func Rejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
