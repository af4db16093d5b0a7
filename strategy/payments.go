package strategy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreditCard pays by card.
type CreditCard struct {
	// Number is the card number. Validated for plausible length only;
	// this is a tutorial, not a PCI gateway.
	Number string

	// Holder is the cardholder name.
	Holder string
}

// Name returns "credit_card".
func (CreditCard) Name() string { return "credit_card" }

// Pay charges the card.
func (c CreditCard) Pay(ctx context.Context, amount int64) (Receipt, error) {
	if ctx.Err() != nil {
		return Receipt{}, ctx.Err()
	}
	if amount <= 0 {
		return Receipt{}, fmt.Errorf("amount must be positive: %w", ErrDeclined)
	}
	digits := strings.ReplaceAll(c.Number, " ", "")
	if len(digits) < 12 {
		return Receipt{}, fmt.Errorf("card number too short: %w", ErrDeclined)
	}
	if c.Holder == "" {
		return Receipt{}, fmt.Errorf("missing cardholder: %w", ErrDeclined)
	}
	return newReceipt(c.Name(), amount), nil
}

// PayPal pays through a PayPal account.
type PayPal struct {
	// Email is the account email.
	Email string
}

// Name returns "paypal".
func (PayPal) Name() string { return "paypal" }

// Pay charges the account.
func (p PayPal) Pay(ctx context.Context, amount int64) (Receipt, error) {
	if ctx.Err() != nil {
		return Receipt{}, ctx.Err()
	}
	if amount <= 0 {
		return Receipt{}, fmt.Errorf("amount must be positive: %w", ErrDeclined)
	}
	if !strings.Contains(p.Email, "@") {
		return Receipt{}, fmt.Errorf("invalid paypal email %q: %w", p.Email, ErrDeclined)
	}
	return newReceipt(p.Name(), amount), nil
}

// Crypto pays from a wallet address.
type Crypto struct {
	// Wallet is the wallet address.
	Wallet string
}

// Name returns "crypto".
func (Crypto) Name() string { return "crypto" }

// Pay transfers from the wallet.
func (c Crypto) Pay(ctx context.Context, amount int64) (Receipt, error) {
	if ctx.Err() != nil {
		return Receipt{}, ctx.Err()
	}
	if amount <= 0 {
		return Receipt{}, fmt.Errorf("amount must be positive: %w", ErrDeclined)
	}
	if len(c.Wallet) < 8 {
		return Receipt{}, fmt.Errorf("invalid wallet address: %w", ErrDeclined)
	}
	return newReceipt(c.Name(), amount), nil
}

func newReceipt(method string, amount int64) Receipt {
	return Receipt{
		ID:     uuid.NewString(),
		Method: method,
		Amount: amount,
		PaidAt: time.Now().UTC(),
	}
}
