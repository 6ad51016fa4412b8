package ilpenc

import (
	"fmt"

	"github.com/netsensor/idcode/internal/antichain"
	"github.com/netsensor/idcode/internal/preprocess"
)

// UniquenessOptions controls the two optional reductions of spec.md §4.5.
type UniquenessOptions struct {
	RemoveSupersets     bool
	Check2Neighbourhood bool
}

// distinguishingSet computes D(U, W) per spec.md §3: (U△W) ∪ (N1(U)△N1(W)).
func distinguishingSet(res *preprocess.Result, u, w []int) []int {
	a := preprocess.SymmetricDifference(u, w)
	b := preprocess.SymmetricDifference(preprocess.SetNeighborhood(res, u), preprocess.SetNeighborhood(res, w))
	return preprocess.Union(a, b)
}

// GenerateUniqueness enumerates every unordered pair (U, W) with
// 1 <= |U| <= |W| <= k, U != W, and emits one row per surviving
// distinguishing set, named u1, u2, ... in emission order.
func GenerateUniqueness(res *preprocess.Result, k int, opts UniquenessOptions) ([]Row, error) {
	n := res.Graph.N
	var kept [][]int

	store := antichain.NewStore()
	seen := make(map[string]bool)

	consider := func(d []int) {
		if len(d) == 0 {
			return // defended per spec.md §4.5; unreachable on a simple graph with U != W
		}
		if opts.RemoveSupersets {
			if store.Insert(d) {
				kept = store.Sets()
			}
			return
		}
		key := keyOf(d)
		if seen[key] {
			return
		}
		seen[key] = true
		kept = append(kept, d)
	}

	for sizeU := 1; sizeU <= k; sizeU++ {
		usets := combinations(n, sizeU)
		for _, U := range usets {
			for sizeW := sizeU; sizeW <= k; sizeW++ {
				wsets := combinations(n, sizeW)
				for _, W := range wsets {
					if sizeU == sizeW && !lexLess(U, W) {
						continue // only take U < W to emit each unordered pair once
					}
					if equalSlices(U, W) {
						continue
					}
					if opts.Check2Neighbourhood {
						n2u := preprocess.ClosedSetNeighborhood2(res, U)
						n2w := preprocess.ClosedSetNeighborhood2(res, W)
						if !preprocess.Intersects(n2u, n2w) {
							continue
						}
					}
					d := distinguishingSet(res, U, W)
					consider(d)
				}
			}
		}
	}

	if opts.RemoveSupersets {
		kept = store.Sets()
	}

	rows := make([]Row, len(kept))
	for i, d := range kept {
		rows[i] = Row{Name: fmt.Sprintf("u%d", i+1), Terms: fireTerms(d), Op: ">=", RHS: 1}
	}
	return rows, nil
}

func equalSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func keyOf(ids []int) string {
	b := make([]byte, 0, len(ids)*4)
	for _, v := range ids {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), ',')
	}
	return string(b)
}
