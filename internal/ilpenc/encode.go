package ilpenc

import (
	"fmt"

	"github.com/netsensor/idcode/internal/errs"
	"github.com/netsensor/idcode/internal/preprocess"
)

// EncodeTwoStep builds the two-step ILP model of spec.md §4.5: binary fire
// variables, bounded-integer detector variables, detection equalities,
// at-least-one rows, and the uniqueness rows from GenerateUniqueness.
func EncodeTwoStep(res *preprocess.Result, k int, opts UniquenessOptions) (*Model, error) {
	n := res.Graph.N
	m := &Model{TwoStep: true, K: k}

	m.Objective = make([]Term, n)
	m.Binary = make([]int, n)
	m.General = make([]VarBound, n)
	for v := 1; v <= n; v++ {
		m.Objective[v-1] = Term{Name: fireVarName(v), Coef: 1}
		m.Binary[v-1] = v
		m.General[v-1] = VarBound{Var: v, LB: 0, UB: len(res.N1Closed[v-1])}
	}

	// Detection (equality): y_v - sum_{u in N1Closed[v]} x_u = 0.
	for v := 1; v <= n; v++ {
		closed := res.N1Closed[v-1]
		terms := make([]Term, 0, len(closed)+1)
		terms = append(terms, Term{Name: detectorVarName(v), Coef: 1})
		for _, u := range closed {
			terms = append(terms, Term{Name: fireVarName(u), Coef: -1})
		}
		m.Rows = append(m.Rows, Row{Name: fmt.Sprintf("d%d", v), Terms: terms, Op: "=", RHS: 0})
	}

	// At-least-one: y_v >= 1.
	for v := 1; v <= n; v++ {
		m.Rows = append(m.Rows, Row{
			Name:  fmt.Sprintf("a%d", v),
			Terms: []Term{{Name: detectorVarName(v), Coef: 1}},
			Op:    ">=",
			RHS:   1,
		})
	}

	uRows, err := GenerateUniqueness(res, k, opts)
	if err != nil {
		return nil, err
	}
	m.Rows = append(m.Rows, uRows...)

	return m, nil
}

// EncodeOneStep builds the one-step ILP model of spec.md §4.5: valid only
// for k == 1, and only after twin removal (res must come from
// preprocess.Run(g, false)).
func EncodeOneStep(res *preprocess.Result, k int) (*Model, error) {
	if k != 1 {
		return nil, errs.New(errs.Preprocess, "encode", fmt.Errorf("one-step ILP requires k == 1, got %d", k))
	}

	n := res.Graph.N
	m := &Model{TwoStep: false, K: 1}
	m.Objective = make([]Term, n)
	m.Binary = make([]int, n)
	for v := 1; v <= n; v++ {
		m.Objective[v-1] = Term{Name: fireVarName(v), Coef: 1}
		m.Binary[v-1] = v
	}

	for v := 1; v <= n; v++ {
		m.Rows = append(m.Rows, Row{
			Name:  fmt.Sprintf("d%d", v),
			Terms: fireTerms(res.N1Closed[v-1]),
			Op:    ">=",
			RHS:   1,
		})
	}

	idx := 0
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if !within2Hops(res, u, v) {
				continue
			}
			d := preprocess.SymmetricDifference(res.N1Closed[u-1], res.N1Closed[v-1])
			if len(d) == 0 {
				continue
			}
			idx++
			m.Rows = append(m.Rows, Row{Name: fmt.Sprintf("u%d", idx), Terms: fireTerms(d), Op: ">=", RHS: 1})
		}
	}

	return m, nil
}

func within2Hops(res *preprocess.Result, u, v int) bool {
	for _, w := range res.N2Closed[u-1] {
		if w == v {
			return true
		}
	}
	return false
}
