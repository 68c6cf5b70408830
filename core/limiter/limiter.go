package limiter

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
)

// Config holds configuration for the rate limiter.
type Config struct {
	// MaxConcurrent is the maximum number of in-flight remote calls.
	MaxConcurrent int `mapstructure:"max_concurrent" default:"20"`
	// IntervalSeconds is how long a slot stays idle after a call completes.
	IntervalSeconds float64 `mapstructure:"interval_seconds" default:"2"`
}

// Limiter throttles remote calls. See the package documentation for the
// exact discipline. The zero value is not usable; construct with New.
type Limiter struct {
	sem      *semaphore.Weighted
	interval time.Duration
}

// New creates a Limiter from the configuration, falling back to the
// defaults (20 concurrent, 2s interval) for non-positive values.
func New(cfg Config) *Limiter {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 20
	}
	interval := time.Duration(cfg.IntervalSeconds * float64(time.Second))
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Limiter{
		sem:      semaphore.NewWeighted(int64(maxConcurrent)),
		interval: interval,
	}
}

// Do runs fn inside a limiter slot. It blocks until a slot is available,
// and after fn returns keeps the slot occupied for the configured interval
// before releasing it. fn's error is returned unchanged; the idle wait is
// cut short only by context cancellation.
func (l *Limiter) Do(ctx context.Context, fn func() error) error {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer l.sem.Release(1)

	err := fn()

	timer := time.NewTimer(l.interval)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
	return err
}

// Interval reports the configured idle interval.
func (l *Limiter) Interval() time.Duration {
	return l.interval
}
