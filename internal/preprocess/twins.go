package preprocess

import (
	"sort"

	"github.com/netsensor/idcode/internal/graph"
)

// closedNeighborhoodKey returns a comparable key for v's sorted closed
// 1-neighborhood (v plus its open neighbors): equal keys mean equal closed
// neighborhoods, i.e. v and the other vertex are twins.
func closedNeighborhoodKey(g *graph.Graph, v string) string {
	nbrs, _ := g.Neighbors(v)
	set := make([]string, 0, len(nbrs)+1)
	set = append(set, nbrs...)
	set = append(set, v)
	sort.Strings(set)
	key := ""
	for i, s := range set {
		if i > 0 {
			key += "\x00"
		}
		key += s
	}
	return key
}

// twinRemoval merges every twin class (vertices sharing an identical closed
// 1-neighborhood) into its minimum-label representative, mutating g in
// place. It returns, keyed by representative label, the sorted labels of
// every vertex contracted into that representative (including itself,
// present only for classes of size > 1), and the subset of representatives
// left isolated by the merge — the degenerate case spec.md §9 calls out for
// a triangle-shaped twin class collapsing to a single, edgeless vertex.
//
// Every twin class detected here is necessarily a clique: if N1+(u) = N1+(v)
// for u != v, then v must appear in N1+(u), so u and v are adjacent.
func twinRemoval(g *graph.Graph) (byRep map[string][]string, degenerate map[string]bool) {
	vertices := g.Vertices()

	keyOf := make(map[string]string, len(vertices))
	for _, v := range vertices {
		keyOf[v] = closedNeighborhoodKey(g, v)
	}
	classes := make(map[string][]string, len(vertices))
	for _, v := range vertices {
		classes[keyOf[v]] = append(classes[keyOf[v]], v)
	}

	byRep = make(map[string][]string)
	for _, class := range classes {
		if len(class) < 2 {
			continue
		}
		sorted := append([]string(nil), class...)
		sort.Strings(sorted)
		byRep[sorted[0]] = sorted
	}

	for rep, class := range byRep {
		for _, other := range class {
			if other != rep {
				g.RemoveVertex(other)
			}
		}
	}

	degenerate = make(map[string]bool)
	for rep, class := range byRep {
		nbrs, _ := g.Neighbors(rep)
		if len(nbrs) == 0 && len(class) > 1 {
			degenerate[rep] = true
		}
	}
	return byRep, degenerate
}
