// Package cardinality implements the Cardinality Encoder of spec.md §4.3:
// "at most u" / "at least l" / "= u" CNF fragments over a caller-supplied
// variable set, with auxiliary variables allocated contiguously from a
// caller-supplied start index.
package cardinality

import (
	"errors"
	"fmt"
)

// Kind selects exactly one cardinality relation, per the "exactly one of"
// contract in spec.md §4.3.
type Kind int

const (
	// AtMost encodes sum(vars) <= Value.
	AtMost Kind = iota
	// AtLeast encodes sum(vars) >= Value.
	AtLeast
	// Equal encodes sum(vars) == Value.
	Equal
)

// Bound is a single cardinality constraint specification.
type Bound struct {
	Kind  Kind
	Value int
}

// NewAtMost builds an "at most ub" bound.
func NewAtMost(ub int) Bound { return Bound{Kind: AtMost, Value: ub} }

// NewAtLeast builds an "at least lb" bound.
func NewAtLeast(lb int) Bound { return Bound{Kind: AtLeast, Value: lb} }

// NewEqual builds an "exactly n" bound.
func NewEqual(n int) Bound { return Bound{Kind: Equal, Value: n} }

// ErrStartIndexTooLow indicates start_idx <= max(vars), violating the
// contiguous-allocation contract of spec.md §4.3.
var ErrStartIndexTooLow = errors.New("cardinality: start_idx must exceed every input variable")

func (b Bound) String() string {
	switch b.Kind {
	case AtMost:
		return fmt.Sprintf("<= %d", b.Value)
	case AtLeast:
		return fmt.Sprintf(">= %d", b.Value)
	default:
		return fmt.Sprintf("== %d", b.Value)
	}
}
