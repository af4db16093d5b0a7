// Package templatemethod demonstrates the Template Method pattern with
// beverage preparation.
//
// Go has no inheritance, so the pattern is rendered the way this module's
// other components already work: a concrete Preparer owns the invariant
// step sequence and delegates the varying steps to a Recipe interface. The
// sequence is fixed in one place; recipes can only fill in the blanks, not
// reorder them.
package templatemethod

import (
	"context"
	"fmt"
	"time"

	"github.com/gopatterns/patterns/event"
	"github.com/gopatterns/patterns/nullobject"
	"github.com/gopatterns/patterns/singleton"
)

// Recipe supplies the beverage-specific steps of the template.
//
// Brew and Condiments are the deferred steps; everything else about
// preparation (boiling, pouring, ordering) is fixed by Preparer.
type Recipe interface {
	// Name identifies the beverage, e.g. "tea".
	Name() string

	// Brew steeps, drips or otherwise extracts the beverage.
	Brew(ctx context.Context) error

	// Condiments adds the finishing touches. Only called when the
	// recipe wants condiments (see CondimentHook).
	Condiments(ctx context.Context) error
}

// CondimentHook is the template's optional hook. Recipes that implement it
// can decline the condiments step; recipes that don't get condiments by
// default.
type CondimentHook interface {
	WantsCondiments() bool
}

// Preparer runs the fixed preparation sequence:
//
//	boil water → brew → pour into cup → add condiments (hook permitting)
//
// The sequence itself is not customizable; that is the point of the
// pattern. What each recipe brews and adds is.
type Preparer struct {
	sink event.Sink
	log  nullobject.Logger
}

// PreparerOption is a functional option for NewPreparer.
type PreparerOption func(*Preparer) error

// WithSink reports each preparation step through the given sink.
// A nil sink is replaced with a NullSink.
func WithSink(sink event.Sink) PreparerOption {
	return func(p *Preparer) error {
		if sink == nil {
			sink = event.NewNullSink()
		}
		p.sink = sink
		return nil
	}
}

// WithLogger narrates preparation through the given logger.
// A nil logger is replaced with a NopLogger.
func WithLogger(log nullobject.Logger) PreparerOption {
	return func(p *Preparer) error {
		p.log = nullobject.OrNop(log)
		return nil
	}
}

// NewPreparer creates a Preparer.
//
// Example:
//
//	prep, err := templatemethod.NewPreparer(
//	    templatemethod.WithSink(sink),
//	)
//	if err != nil {
//	    return err
//	}
//	err = prep.Prepare(ctx, templatemethod.Tea{})
func NewPreparer(opts ...PreparerOption) (*Preparer, error) {
	p := &Preparer{
		sink: event.NewNullSink(),
		log:  nullobject.NewNopLogger(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("invalid preparer option: %w", err)
		}
	}
	return p, nil
}

// Prepare is the template method. It runs the fixed sequence, reporting
// each step, and stops at the first failing step.
//
// Returns the failing step's error (wrapped with the step name), or
// ctx.Err() when the context is done.
func (p *Preparer) Prepare(ctx context.Context, r Recipe) error {
	start := time.Now()
	metrics := singleton.GetMetrics()

	step := 0
	runStep := func(name string, fn func(context.Context) error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		step++

		if err := fn(ctx); err != nil {
			p.sink.Emit(event.Event{
				Demo: "beverage",
				Step: step,
				Op:   name,
				Msg:  name + " failed",
				Meta: map[string]interface{}{
					"recipe": r.Name(),
					"error":  err.Error(),
				},
			})
			p.log.Error("preparation failed",
				nullobject.F("recipe", r.Name()),
				nullobject.F("step", name),
			)
			return fmt.Errorf("%s: %w", name, err)
		}

		metrics.BeverageSteps.WithLabelValues(name).Inc()
		p.sink.Emit(event.Event{
			Demo: "beverage",
			Step: step,
			Op:   name,
			Msg:  stepMsg(name, r),
			Meta: map[string]interface{}{
				"recipe": r.Name(),
			},
		})
		return nil
	}

	if err := runStep("boil", p.boilWater); err != nil {
		return err
	}
	if err := runStep("brew", r.Brew); err != nil {
		return err
	}
	if err := runStep("pour", p.pourInCup); err != nil {
		return err
	}
	if wantsCondiments(r) {
		if err := runStep("condiments", r.Condiments); err != nil {
			return err
		}
	}

	metrics.PrepareDuration.Observe(time.Since(start).Seconds())
	p.log.Info("beverage ready", nullobject.F("recipe", r.Name()))
	return nil
}

// boilWater and pourInCup are the invariant steps every beverage shares.

func (p *Preparer) boilWater(ctx context.Context) error {
	return ctx.Err()
}

func (p *Preparer) pourInCup(ctx context.Context) error {
	return ctx.Err()
}

// wantsCondiments consults the optional hook, defaulting to true.
func wantsCondiments(r Recipe) bool {
	if hook, ok := r.(CondimentHook); ok {
		return hook.WantsCondiments()
	}
	return true
}

func stepMsg(name string, r Recipe) string {
	switch name {
	case "boil":
		return "boiling water"
	case "brew":
		return "brewing " + r.Name()
	case "pour":
		return "pouring into cup"
	case "condiments":
		return "adding condiments"
	default:
		return name
	}
}
