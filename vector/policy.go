package vector

import (
	"fmt"
	"strings"

	"github.com/joshuapare/growarray/internal/buf"
)

// GrowthMode selects how capacity increases once it is exhausted.
type GrowthMode uint8

const (
	// Multiplicative multiplies the capacity by the growth factor.
	Multiplicative GrowthMode = iota
	// Linear adds the growth factor to the capacity.
	Linear
)

// Defaults applied to zero Policy fields.
const (
	DefaultGrowthFactor    = 2
	DefaultLinearIncrement = 1
	DefaultMinCapacity     = 8
)

func (m GrowthMode) String() string {
	switch m {
	case Multiplicative:
		return "multiplicative"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("GrowthMode(%d)", uint8(m))
	}
}

// ParseGrowthMode parses "multiplicative" or "linear" (case-insensitive).
func ParseGrowthMode(s string) (GrowthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "multiplicative", "mult", "":
		return Multiplicative, nil
	case "linear":
		return Linear, nil
	default:
		return 0, fmt.Errorf("%w: unknown growth mode %q", ErrInvalidPolicy, s)
	}
}

// Policy is the growth strategy of a vector. It is fixed when the vector is
// constructed; zero fields take the defaults for the selected mode.
type Policy struct {
	// Name for this policy (prefixes String() when set)
	Name string

	Mode GrowthMode

	// Factor is the multiplier (Multiplicative) or the increment (Linear).
	Factor int

	// MinCapacity is the first allocation in Multiplicative mode.
	// Linear mode always starts at one element.
	MinCapacity int
}

// Predefined policies.
var (
	// PolicyDoubling: amortized O(1) appends, up to 2x slack
	// 8, 16, 32, 64, ...
	PolicyDoubling = Policy{
		Name:        "Doubling",
		Mode:        Multiplicative,
		Factor:      DefaultGrowthFactor,
		MinCapacity: DefaultMinCapacity,
	}

	// PolicyLinear: one reallocation per append, no slack
	// 1, 2, 3, 4, ...
	PolicyLinear = Policy{
		Name:   "Linear",
		Mode:   Linear,
		Factor: DefaultLinearIncrement,
	}

	// Default policy (used if none specified).
	DefaultPolicy = PolicyDoubling
)

// withDefaults fills zero fields.
func (p Policy) withDefaults() Policy {
	switch p.Mode {
	case Multiplicative:
		if p.Factor == 0 {
			p.Factor = DefaultGrowthFactor
		}
		if p.MinCapacity == 0 {
			p.MinCapacity = DefaultMinCapacity
		}
	case Linear:
		if p.Factor == 0 {
			p.Factor = DefaultLinearIncrement
		}
	}
	return p
}

// Validate reports whether the policy, after defaults are applied, always
// produces a larger capacity.
func (p Policy) Validate() error {
	p = p.withDefaults()
	switch p.Mode {
	case Multiplicative:
		if p.Factor < 2 {
			return fmt.Errorf("%w: multiplicative factor %d must be at least 2", ErrInvalidPolicy, p.Factor)
		}
		if p.MinCapacity < 1 {
			return fmt.Errorf("%w: minimum capacity %d must be positive", ErrInvalidPolicy, p.MinCapacity)
		}
	case Linear:
		if p.Factor < 1 {
			return fmt.Errorf("%w: linear increment %d must be positive", ErrInvalidPolicy, p.Factor)
		}
	default:
		return fmt.Errorf("%w: unknown mode %v", ErrInvalidPolicy, p.Mode)
	}
	return nil
}

// Next returns the capacity that follows capacity when it is exhausted.
//
//	Multiplicative: 0 -> MinCapacity, n -> max(MinCapacity, n*Factor)
//	Linear:         0 -> 1,           n -> n+Factor
func (p Policy) Next(capacity int) (int, error) {
	p = p.withDefaults()
	if capacity == 0 {
		if p.Mode == Linear {
			return 1, nil
		}
		return p.MinCapacity, nil
	}

	var (
		next int
		ok   bool
	)
	if p.Mode == Linear {
		next, ok = buf.AddOverflowSafe(capacity, p.Factor)
	} else {
		next, ok = buf.MulOverflowSafe(capacity, p.Factor)
	}
	if !ok {
		return 0, fmt.Errorf("%w: capacity %d cannot grow by %d: %w",
			ErrAllocationFailure, capacity, p.Factor, buf.ErrOverflow)
	}
	if p.Mode == Multiplicative {
		next = max(next, p.MinCapacity)
	}
	return next, nil
}

// String describes the schedule, e.g. "Doubling: multiplicative(x2, min 8)".
func (p Policy) String() string {
	p = p.withDefaults()
	var desc string
	if p.Mode == Linear {
		desc = fmt.Sprintf("%s(+%d)", p.Mode, p.Factor)
	} else {
		desc = fmt.Sprintf("%s(x%d, min %d)", p.Mode, p.Factor, p.MinCapacity)
	}
	if p.Name == "" {
		return desc
	}
	return p.Name + ": " + desc
}
