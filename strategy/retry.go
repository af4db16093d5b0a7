package strategy

import (
	"errors"
	"math/rand"
	"time"
)

// ErrInvalidRetry is returned by RetryStrategy.Validate for a
// misconfigured strategy.
var ErrInvalidRetry = errors.New("invalid retry strategy")

// ErrTransient marks a failure worth retrying. Payment gateways use it to
// distinguish "try again" (network blip, rate limit) from "give up"
// (declined card).
var ErrTransient = errors.New("transient failure")

// RetryStrategy defines how failed payment attempts are retried.
//
// It is the second strategy family in this package: where PaymentStrategy
// swaps the payment algorithm, RetryStrategy swaps the failure-handling
// algorithm. Exponential backoff with jitter is used to avoid synchronized
// retry storms.
type RetryStrategy struct {
	// MaxAttempts is the maximum number of attempts including the first.
	// Must be >= 1. A value of 1 means no retries.
	MaxAttempts int

	// BaseDelay is the base delay for exponential backoff between
	// attempts. The actual delay is min(BaseDelay * 2^attempt, MaxDelay)
	// plus jitter in [0, BaseDelay).
	BaseDelay time.Duration

	// MaxDelay caps the exponential growth. Zero means no cap.
	MaxDelay time.Duration

	// Retryable decides whether an error deserves another attempt.
	// If nil, only errors wrapping ErrTransient are retried.
	Retryable func(error) bool
}

// Validate checks the strategy configuration:
//   - MaxAttempts must be >= 1
//   - If both MaxDelay and BaseDelay are > 0, MaxDelay must be >= BaseDelay
func (rs RetryStrategy) Validate() error {
	if rs.MaxAttempts < 1 {
		return ErrInvalidRetry
	}
	if rs.MaxDelay > 0 && rs.BaseDelay > 0 && rs.MaxDelay < rs.BaseDelay {
		return ErrInvalidRetry
	}
	return nil
}

// ShouldRetry reports whether err deserves another attempt under this
// strategy.
func (rs RetryStrategy) ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if rs.Retryable != nil {
		return rs.Retryable(err)
	}
	return errors.Is(err, ErrTransient)
}

// Backoff computes the delay before the given zero-based retry attempt.
//
// The formula is:
//
//	delay = min(BaseDelay * 2^attempt, MaxDelay) + jitter(0, BaseDelay)
//
// The exponential component doubles the delay each retry; jitter
// randomizes timing across concurrent callers. Pass a seeded rng for
// deterministic tests, or nil to use the package-level source.
//
// Example delays with BaseDelay=1s, MaxDelay=30s:
//   - attempt 0: 1s + jitter(0, 1s)
//   - attempt 1: 2s + jitter(0, 1s)
//   - attempt 3: 8s + jitter(0, 1s)
//   - attempt 10: 30s + jitter(0, 1s) (capped)
func (rs RetryStrategy) Backoff(attempt int, rng *rand.Rand) time.Duration {
	if rs.BaseDelay <= 0 {
		return 0
	}

	// base * 2^attempt via bit shift.
	delay := rs.BaseDelay * (1 << attempt)
	if rs.MaxDelay > 0 && delay > rs.MaxDelay {
		delay = rs.MaxDelay
	}

	var jitter time.Duration
	if rng != nil {
		jitter = time.Duration(rng.Int63n(int64(rs.BaseDelay)))
	} else {
		// Jitter for retry timing, not security.
		jitter = time.Duration(rand.Int63n(int64(rs.BaseDelay))) // #nosec G404
	}

	return delay + jitter
}
