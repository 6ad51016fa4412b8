// Package preprocess implements the Preprocessor: optional twin removal,
// canonical relabelling of vertex ids to {1..N}, and the computation of the
// open/closed 1- and closed 2-neighborhood caches every downstream encoder
// relies on.
package preprocess

import (
	"errors"
	"sort"

	"github.com/netsensor/idcode/internal/graph"
)

// ErrResidualTwins is the defended-against invariant violation of spec.md
// §9's Open Question: one-step mode requires twin removal to have run and
// to have left no twins behind. Reaching it means the twin-removal
// algorithm has a bug, not that the input graph is unusual.
var ErrResidualTwins = errors.New("preprocess: twins remain after twin removal")

// CanonicalGraph is the relabelled graph: vertex ids are {1..N}, open
// adjacency is cached as sorted int slices, and is treated as immutable
// for the remainder of the run once built.
type CanonicalGraph struct {
	N   int
	adj [][]int // adj[v-1] = sorted open neighbors of v, 1-indexed ids
}

// Neighbors returns the open neighborhood of v (1-indexed).
func (cg *CanonicalGraph) Neighbors(v int) []int { return cg.adj[v-1] }

// Result is everything the Preprocessor produces for a single run.
type Result struct {
	Graph      *CanonicalGraph
	LabelMap   *LabelMap
	TwinMap    TwinMap // nil unless twin removal ran and merged a twin class
	Degenerate []int   // canonical ids isolated by a twin merge

	// N1, N1Closed, N2Closed are computed once and cached, indexed the
	// same way as CanonicalGraph.adj (index v-1 for vertex v).
	N1       [][]int
	N1Closed [][]int
	N2Closed [][]int
}

// Run performs the full Preprocessor pipeline on g: twin removal (iff
// !twoStep), canonical relabelling, and neighborhood caching.
func Run(g *graph.Graph, twoStep bool) (*Result, error) {
	var twinsByRep map[string][]string
	var degenerateLabels map[string]bool
	if !twoStep {
		twinsByRep, degenerateLabels = twinRemoval(g)
	}

	names := g.Vertices()
	sort.Strings(names)
	lm := newLabelMap(len(names))
	for i, name := range names {
		lm.set(i+1, name)
	}

	n := len(names)
	cg := &CanonicalGraph{N: n, adj: make([][]int, n)}
	for i, name := range names {
		nbrs, _ := g.Neighbors(name)
		ids := make([]int, 0, len(nbrs))
		for _, nb := range nbrs {
			id, ok := lm.ID(nb)
			if !ok {
				continue
			}
			ids = append(ids, id)
		}
		sort.Ints(ids)
		cg.adj[i] = ids
	}

	twinMap := make(TwinMap)
	var degenerateIDs []int
	for rep, class := range twinsByRep {
		id, ok := lm.ID(rep)
		if !ok {
			continue
		}
		twinMap[id] = class
	}
	for rep := range degenerateLabels {
		if id, ok := lm.ID(rep); ok {
			degenerateIDs = append(degenerateIDs, id)
		}
	}
	sort.Ints(degenerateIDs)

	if !twoStep {
		// Defensive re-check: no vertex should still have a twin after the
		// merge above (see ErrResidualTwins doc).
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if sameClosedNeighborhood(cg, i, j) {
					return nil, ErrResidualTwins
				}
			}
		}
	}

	res := &Result{
		Graph:      cg,
		LabelMap:   lm,
		Degenerate: degenerateIDs,
	}
	if len(twinMap) > 0 {
		res.TwinMap = twinMap
	}
	computeNeighborhoods(res)
	return res, nil
}

func sameClosedNeighborhood(cg *CanonicalGraph, u, v int) bool {
	cu := closedSet(cg, u)
	cv := closedSet(cg, v)
	if len(cu) != len(cv) {
		return false
	}
	for i := range cu {
		if cu[i] != cv[i] {
			return false
		}
	}
	return true
}

func closedSet(cg *CanonicalGraph, v int) []int {
	nbrs := cg.Neighbors(v)
	out := make([]int, 0, len(nbrs)+1)
	out = append(out, nbrs...)
	out = append(out, v)
	sort.Ints(out)
	return out
}
