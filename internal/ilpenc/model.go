// Package ilpenc builds the ILP encoding of spec.md §4.5: binary fire
// variables, bounded-integer detector variables (two-step) or their
// absence (one-step, k=1 only), detection/at-least-one/uniqueness
// constraint families, and the standard LP text emission of §4.6/§6.
package ilpenc

import "fmt"

// Term is one coefficient*variable addend in a linear constraint or the
// objective.
type Term struct {
	Name string // "x3" or "y3"
	Coef int
}

// Row is one named linear constraint.
type Row struct {
	Name  string
	Terms []Term
	Op    string // ">=", "<=", "="
	RHS   int
}

// VarBound is a general-integer variable's declared range.
type VarBound struct {
	Var    int
	LB, UB int
}

// Model is the fully-built ILP instance, ready for LP emission.
type Model struct {
	Objective []Term
	Rows      []Row
	Binary    []int      // fire variables x_v
	General   []VarBound // detector variables y_v (two-step only)
	TwoStep   bool
	K         int
}

func fireVarName(v int) string     { return fmt.Sprintf("x%d", v) }
func detectorVarName(v int) string { return fmt.Sprintf("y%d", v) }

// fireTerms converts a slice of vertex ids into unit-coefficient fire-
// variable terms, the shape every uniqueness and one-step detection row
// uses.
func fireTerms(vars []int) []Term {
	terms := make([]Term, len(vars))
	for i, v := range vars {
		terms[i] = Term{Name: fireVarName(v), Coef: 1}
	}
	return terms
}
