// SPDX-License-Identifier: MIT

package minweight

import "fmt"

// Strategy selects the enumeration algorithm.
type Strategy int

const (
	// Auto picks Exhaustive when k <= ExhaustiveLimit, else MeetInTheMiddle.
	Auto Strategy = iota
	// Exhaustive enumerates all 2^k subsets.
	Exhaustive
	// MeetInTheMiddle splits the basis into two halves.
	MeetInTheMiddle
	// Direct is reported when k == 0 and no search was needed.
	Direct
)

// String returns a metric-friendly label.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Exhaustive:
		return "exhaustive"
	case MeetInTheMiddle:
		return "meet_in_the_middle"
	case Direct:
		return "direct"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a label produced by String back to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "exhaustive":
		return Exhaustive, nil
	case "meet_in_the_middle", "mitm":
		return MeetInTheMiddle, nil
	}
	return Auto, fmt.Errorf("minweight: unknown strategy %q", s)
}

const (
	// DefaultExhaustiveLimit is the largest k searched exhaustively under Auto.
	DefaultExhaustiveLimit = 24

	// MaxFreeVariables bounds k; subset masks are 64-bit.
	MaxFreeVariables = 62
)

// Options configures Search. Build it with DefaultOptions and Option funcs.
type Options struct {
	ExhaustiveLimit int
	Strategy        Strategy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Auto strategy with DefaultExhaustiveLimit.
func DefaultOptions() Options {
	return Options{ExhaustiveLimit: DefaultExhaustiveLimit, Strategy: Auto}
}

// WithExhaustiveLimit sets the Auto threshold. Panics if k is outside
// [0, MaxFreeVariables].
func WithExhaustiveLimit(k int) Option {
	if k < 0 || k > MaxFreeVariables {
		panic(fmt.Sprintf("minweight: WithExhaustiveLimit(%d) out of [0,%d]", k, MaxFreeVariables))
	}
	return func(o *Options) { o.ExhaustiveLimit = k }
}

// WithStrategy forces a strategy. Panics on Direct or unknown values.
func WithStrategy(s Strategy) Option {
	if s != Auto && s != Exhaustive && s != MeetInTheMiddle {
		panic(fmt.Sprintf("minweight: WithStrategy(%v) not selectable", s))
	}
	return func(o *Options) { o.Strategy = s }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// resolve picks the concrete strategy for k free variables.
func (o Options) resolve(k int) Strategy {
	if k == 0 {
		return Direct
	}
	switch o.Strategy {
	case Exhaustive, MeetInTheMiddle:
		return o.Strategy
	}
	if k <= o.ExhaustiveLimit {
		return Exhaustive
	}
	return MeetInTheMiddle
}
