// Package strategy demonstrates the Strategy pattern with payments.
//
// A Checkout holds a PaymentStrategy and can swap it at runtime; the
// checkout flow never changes, only the algorithm behind Pay. A second
// strategy family, RetryStrategy, shows the same pattern applied to an
// infrastructure concern: how to back off between failed attempts.
package strategy

import (
	"context"
	"errors"
	"time"
)

// ErrNoStrategy is returned when a checkout is asked to pay before any
// payment strategy has been selected.
var ErrNoStrategy = errors.New("no payment strategy selected")

// ErrDeclined is returned when a payment method rejects the charge.
var ErrDeclined = errors.New("payment declined")

// Receipt is the result of a successful payment.
type Receipt struct {
	// ID uniquely identifies the payment.
	ID string

	// Method names the strategy that processed the payment.
	Method string

	// Amount is the charged amount in cents.
	Amount int64

	// PaidAt is when the payment completed.
	PaidAt time.Time
}

// PaymentStrategy is the interchangeable payment algorithm.
//
// Implementations should:
//   - Validate their own credentials and reject bad charges with
//     ErrDeclined (wrapped with detail)
//   - Respect context cancellation
//   - Be safe for concurrent use
type PaymentStrategy interface {
	// Name returns the method name used on receipts, e.g. "credit_card".
	Name() string

	// Pay charges the given amount in cents and returns a receipt.
	Pay(ctx context.Context, amount int64) (Receipt, error)
}
