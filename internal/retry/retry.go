// Package retry wraps fallible operations with bounded exponential backoff.
// Only transient upstream failures (rate limiting, temporary unavailability)
// are retried; anything else propagates on the first attempt.
package retry

import (
	"context"
	"errors"
	"strings"
	"time"
)

const (
	DefaultMaxAttempts  = 3
	DefaultInitialDelay = time.Second
	maxDelay            = 16 * time.Second
)

type options struct {
	maxAttempts  int
	initialDelay time.Duration
	sleep        func(context.Context, time.Duration) error
}

type Option func(*options)

func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

func WithInitialDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.initialDelay = d
		}
	}
}

// WithSleep replaces the backoff sleep, used by tests to observe delays.
func WithSleep(fn func(context.Context, time.Duration) error) Option {
	return func(o *options) { o.sleep = fn }
}

// Do runs op until it succeeds, fails non-transiently, or exhausts the
// attempt budget. The delay doubles after each transient failure up to a
// 16s ceiling. Context cancellation is observed during backoff and
// surfaces as the context's error.
func Do[T any](ctx context.Context, op func() (T, error), opts ...Option) (T, error) {
	o := options{
		maxAttempts:  DefaultMaxAttempts,
		initialDelay: DefaultInitialDelay,
		sleep:        sleepCtx,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var zero T
	var lastErr error
	delay := o.initialDelay

	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		result, err := op()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsTransient(err) || attempt == o.maxAttempts {
			return zero, err
		}

		if err := o.sleep(ctx, delay); err != nil {
			return zero, err
		}
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
		}
	}

	return zero, lastErr
}

type transienter interface {
	Transient() bool
}

// IsTransient reports whether an error looks like a retryable upstream
// condition: either it says so itself, or its message carries an HTTP
// 429/502/503 or rate-limit marker.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var t transienter
	if errors.As(err, &t) {
		return t.Transient()
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"429", "502", "503", "rate limit"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
