package strategy

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/gopatterns/patterns/event"
	"github.com/gopatterns/patterns/nullobject"
)

// Checkout is the strategy context: it owns the payment flow and delegates
// the actual charge to whichever PaymentStrategy is currently selected.
//
// The strategy can be swapped at any time, including between payments.
// Thread-safe.
//
// Example:
//
//	co := strategy.NewCheckout(sink, nil)
//	co.SetStrategy(strategy.PayPal{Email: "a@example.com"})
//	receipt, err := co.Pay(ctx, 1999)
//
//	co.SetStrategy(strategy.Crypto{Wallet: "0xabcdef1234"})
//	receipt, err = co.Pay(ctx, 2500) // same flow, different algorithm
type Checkout struct {
	sink event.Sink
	log  nullobject.Logger

	mu       sync.Mutex
	strategy PaymentStrategy
	step     int
}

// NewCheckout creates a Checkout with no strategy selected.
//
// sink receives a payment event per attempt (nil disables reporting);
// log narrates the flow (nil disables logging).
func NewCheckout(sink event.Sink, log nullobject.Logger) *Checkout {
	if sink == nil {
		sink = event.NewNullSink()
	}
	return &Checkout{
		sink: sink,
		log:  nullobject.OrNop(log),
	}
}

// SetStrategy selects the payment algorithm used by subsequent Pay calls.
func (c *Checkout) SetStrategy(s PaymentStrategy) {
	c.mu.Lock()
	c.strategy = s
	c.mu.Unlock()

	if s != nil {
		c.log.Info("payment strategy selected", nullobject.F("method", s.Name()))
	}
}

// Strategy returns the currently selected strategy, or nil.
func (c *Checkout) Strategy() PaymentStrategy {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.strategy
}

// Pay charges the given amount in cents using the selected strategy.
//
// Returns ErrNoStrategy when no strategy has been selected, or the
// strategy's own error when the charge fails.
func (c *Checkout) Pay(ctx context.Context, amount int64) (Receipt, error) {
	c.mu.Lock()
	s := c.strategy
	c.step++
	step := c.step
	c.mu.Unlock()

	if s == nil {
		c.log.Error("payment attempted with no strategy")
		return Receipt{}, ErrNoStrategy
	}

	receipt, err := s.Pay(ctx, amount)
	if err != nil {
		c.sink.Emit(event.Event{
			Demo: "checkout",
			Step: step,
			Op:   "pay",
			Msg:  "payment failed",
			Meta: map[string]interface{}{
				"method": s.Name(),
				"amount": amount,
				"error":  err.Error(),
			},
		})
		return Receipt{}, err
	}

	c.sink.Emit(event.Event{
		Demo: "checkout",
		Step: step,
		Op:   "pay",
		Msg:  "payment accepted",
		Meta: map[string]interface{}{
			"method":  receipt.Method,
			"amount":  receipt.Amount,
			"receipt": receipt.ID,
		},
	})
	c.log.Info("payment accepted",
		nullobject.F("method", receipt.Method),
		nullobject.F("receipt", receipt.ID),
	)
	return receipt, nil
}

// PayWithRetry charges like Pay but retries transient failures according
// to the given retry strategy.
//
// The retry loop:
//  1. Attempt the payment
//  2. On success or a non-retryable error, stop
//  3. Otherwise sleep for rs.Backoff(attempt) and try again, up to
//     rs.MaxAttempts total attempts
//
// Context cancellation interrupts the backoff sleep and returns ctx.Err().
func (c *Checkout) PayWithRetry(ctx context.Context, amount int64, rs RetryStrategy) (Receipt, error) {
	if err := rs.Validate(); err != nil {
		return Receipt{}, err
	}

	// Local source so concurrent checkouts don't contend on the
	// package-level one.
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- jitter, not security

	var lastErr error
	for attempt := 0; attempt < rs.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := rs.Backoff(attempt-1, rng)
			c.log.Debug("retrying payment",
				nullobject.F("attempt", attempt),
				nullobject.F("delay", delay),
			)
			select {
			case <-ctx.Done():
				return Receipt{}, ctx.Err()
			case <-time.After(delay):
			}
		}

		receipt, err := c.Pay(ctx, amount)
		if err == nil {
			return receipt, nil
		}
		lastErr = err

		if !rs.ShouldRetry(err) {
			return Receipt{}, err
		}
	}

	return Receipt{}, lastErr
}
