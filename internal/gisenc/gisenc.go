// Package gisenc builds the Boolean/GIS encoding of spec.md §4.4: fire and
// detector variables, detection clauses, a cardinality-at-most-k fragment,
// and the c def / c ind / c grp DIMACS annotations a downstream
// grouped-independent-support minimiser expects.
package gisenc

import (
	"fmt"

	"github.com/netsensor/idcode/internal/cardinality"
	"github.com/netsensor/idcode/internal/preprocess"
)

// Formula is the fully-built CNF instance, ready to be written out.
type Formula struct {
	NVars   int
	Clauses [][]int
	Def     []int    // fire variables, in order
	Ind     []int    // independent-support candidates
	Groups  [][2]int // (x_v, y_v) pairs, only populated in two-step mode
	TwoStep bool
	Bound   int
}

// Build constructs the GIS CNF formula for res (an already-preprocessed
// graph). bound is the cardinality-at-most limit applied to the fire
// variables (the CLI's sensor budget when set, otherwise k — see
// spec.md §6's -b flag). Variable numbering follows spec.md §3: x_v = v,
// y_v = N+v, auxiliaries from 2N+1.
func Build(res *preprocess.Result, bound int, twoStep bool, enc cardinality.Encoder) (*Formula, error) {
	n := res.Graph.N
	f := &Formula{TwoStep: twoStep, Bound: bound}

	f.Def = make([]int, n)
	for v := 1; v <= n; v++ {
		f.Def[v-1] = v
	}

	detectionClauses := make([][]int, 0, n*2)
	for v := 1; v <= n; v++ {
		yv := n + v
		closed := res.N1Closed[v-1]

		long := make([]int, 0, len(closed)+1)
		long = append(long, -yv)
		long = append(long, closed...)
		detectionClauses = append(detectionClauses, long)

		for _, u := range closed {
			detectionClauses = append(detectionClauses, []int{yv, -u})
		}
	}

	fireVars := make([]int, n)
	for v := 1; v <= n; v++ {
		fireVars[v-1] = v
	}
	cardClauses, maxVar, err := enc.Encode(fireVars, cardinality.NewAtMost(bound), 2*n+1)
	if err != nil {
		return nil, fmt.Errorf("gisenc: cardinality encoding: %w", err)
	}

	// Clause ordering per spec.md §4.4: cardinality first, then detection.
	f.Clauses = append(f.Clauses, cardClauses...)
	f.Clauses = append(f.Clauses, detectionClauses...)

	if maxVar < 2*n {
		maxVar = 2 * n
	}
	f.NVars = maxVar

	if twoStep {
		ind := make([]int, 0, 2*n)
		ind = append(ind, f.Def...)
		for v := 1; v <= n; v++ {
			ind = append(ind, n+v)
		}
		f.Ind = ind
		f.Groups = make([][2]int, n)
		for v := 1; v <= n; v++ {
			f.Groups[v-1] = [2]int{v, n + v}
		}
	} else {
		ind := make([]int, n)
		for v := 1; v <= n; v++ {
			ind[v-1] = n + v
		}
		f.Ind = ind
	}

	return f, nil
}
