package templatemethod

import "context"

// Tea steeps a tea bag and finishes with lemon.
type Tea struct{}

// Name returns "tea".
func (Tea) Name() string { return "tea" }

// Brew steeps the tea bag.
func (Tea) Brew(ctx context.Context) error {
	return ctx.Err()
}

// Condiments adds lemon.
func (Tea) Condiments(ctx context.Context) error {
	return ctx.Err()
}

// Coffee drips through a filter and finishes with sugar and milk.
type Coffee struct{}

// Name returns "coffee".
func (Coffee) Name() string { return "coffee" }

// Brew drips the coffee.
func (Coffee) Brew(ctx context.Context) error {
	return ctx.Err()
}

// Condiments adds sugar and milk.
func (Coffee) Condiments(ctx context.Context) error {
	return ctx.Err()
}

// BlackCoffee is Coffee with the condiment hook declined: the template
// still fixes the sequence, but the condiments step is skipped.
type BlackCoffee struct {
	Coffee
}

// WantsCondiments declines the condiments step.
func (BlackCoffee) WantsCondiments() bool { return false }
