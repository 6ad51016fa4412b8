package preprocess

import "sort"

// computeNeighborhoods fills res.N1, res.N1Closed, res.N2Closed for every
// vertex, once, from res.Graph's adjacency. These caches are immutable for
// the rest of the run (spec.md §3).
func computeNeighborhoods(res *Result) {
	cg := res.Graph
	n := cg.N
	res.N1 = make([][]int, n)
	res.N1Closed = make([][]int, n)
	res.N2Closed = make([][]int, n)

	for v := 1; v <= n; v++ {
		nbrs := cg.Neighbors(v)
		res.N1[v-1] = append([]int(nil), nbrs...)

		closed := unionSorted(nbrs, []int{v})
		res.N1Closed[v-1] = closed
	}

	for v := 1; v <= n; v++ {
		acc := res.N1Closed[v-1]
		for _, u := range res.N1[v-1] {
			acc = unionSorted(acc, res.N1Closed[u-1])
		}
		res.N2Closed[v-1] = acc
	}
}

// unionSorted merges two sorted, duplicate-free int slices into one sorted,
// duplicate-free slice.
func unionSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// SetNeighborhood returns the union of N1 (open) over every vertex in ids.
func SetNeighborhood(res *Result, ids []int) []int {
	var acc []int
	for _, v := range ids {
		acc = unionSorted(acc, res.N1[v-1])
	}
	if acc == nil {
		acc = []int{}
	}
	return acc
}

// ClosedSetNeighborhood2 returns the union of N2Closed over every vertex in ids.
func ClosedSetNeighborhood2(res *Result, ids []int) []int {
	var acc []int
	for _, v := range ids {
		acc = unionSorted(acc, res.N2Closed[v-1])
	}
	if acc == nil {
		acc = []int{}
	}
	return acc
}

// SymmetricDifference returns a \ b union b \ a for sorted, duplicate-free
// int slices a and b.
func SymmetricDifference(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	sort.Ints(out)
	return out
}

// Union returns the sorted union of two already-sorted slices a and b,
// treating them as sets rather than mutating either input.
func Union(a, b []int) []int { return unionSorted(a, b) }

// Intersects reports whether two sorted int slices share any element.
func Intersects(a, b []int) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			return true
		}
	}
	return false
}
