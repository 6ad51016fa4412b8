package gisenc_test

import (
	"testing"

	"github.com/crillab/gophersat/solver"
	"github.com/netsensor/idcode/internal/cardinality"
	"github.com/netsensor/idcode/internal/gisenc"
	"github.com/netsensor/idcode/internal/graph"
	"github.com/netsensor/idcode/internal/preprocess"
	"github.com/stretchr/testify/require"
)

func path3(t *testing.T) *preprocess.Result {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("2", "3"))
	res, err := preprocess.Run(g, true)
	require.NoError(t, err)
	return res
}

func solve(t *testing.T, clauses [][]int) solver.Status {
	t.Helper()
	pb := solver.ParseSlice(clauses)
	return solver.New(pb).Solve()
}

// TestP3TwoStepBudgetOneIsUnsat is spec.md §8 scenario 1: the path on 3
// vertices, k=1, two-step GIS, needs a minimum identifying code of size 2;
// bounding the cardinality at 1 must be unsatisfiable, at 2 satisfiable.
func TestP3TwoStepBudgetOneIsUnsat(t *testing.T) {
	res := path3(t)
	f, err := gisenc.Build(res, 1, true, cardinality.SequentialEncoder{})
	require.NoError(t, err)
	require.Equal(t, solver.Unsat, solve(t, f.Clauses))
}

func TestP3TwoStepBudgetTwoIsSat(t *testing.T) {
	res := path3(t)
	f, err := gisenc.Build(res, 2, true, cardinality.SequentialEncoder{})
	require.NoError(t, err)
	require.Equal(t, solver.Sat, solve(t, f.Clauses))
}

func TestP3DeclaresSixVariablesAndThreeGroups(t *testing.T) {
	res := path3(t)
	f, err := gisenc.Build(res, 2, true, cardinality.SequentialEncoder{})
	require.NoError(t, err)
	require.Len(t, f.Def, 3)
	require.Len(t, f.Groups, 3)
	require.GreaterOrEqual(t, f.NVars, 6)
}

// TestDetectionSoundness is spec.md §8's "soundness of CNF detection
// encoding" property: for every assignment of the fire variables, the
// unique satisfying assignment of the detector variables is
// y_v = OR_{u in N1Closed(v)} x_u.
func TestDetectionSoundness(t *testing.T) {
	res := path3(t)
	n := res.Graph.N
	f, err := gisenc.Build(res, n, true, cardinality.SequentialEncoder{}) // unconstrained cardinality
	require.NoError(t, err)

	for w := 0; w < 1<<n; w++ {
		clauses := append([][]int(nil), f.Clauses...)
		for v := 1; v <= n; v++ {
			if w&(1<<(v-1)) != 0 {
				clauses = append(clauses, []int{v})
			} else {
				clauses = append(clauses, []int{-v})
			}
		}
		pb := solver.ParseSlice(clauses)
		s := solver.New(pb)
		require.Equal(t, solver.Sat, s.Solve())
		model := s.Model()
		for v := 1; v <= n; v++ {
			want := false
			for _, u := range res.N1Closed[v-1] {
				if w&(1<<(u-1)) != 0 {
					want = true
				}
			}
			require.Equal(t, want, model[n+v-1], "y%d for fire pattern %0*b", v, n, w)
		}
	}
}
