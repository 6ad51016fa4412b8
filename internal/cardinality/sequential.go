package cardinality

import "sort"

// SequentialEncoder is the in-process cardinality encoder spec.md §4.3
// allows as a substitute for the external pseudo-Boolean tool. It implements
// Sinz's sequential-counter encoding: O(n*k) auxiliary variables and
// clauses, no subprocess, no temp files.
type SequentialEncoder struct{}

// Encode implements Encoder.
func (SequentialEncoder) Encode(vars []int, bound Bound, startIdx int) ([][]int, int, error) {
	n := len(vars)
	for _, v := range vars {
		if v >= startIdx {
			return nil, 0, ErrStartIndexTooLow
		}
	}

	var clauses [][]int
	next := startIdx

	switch bound.Kind {
	case AtMost:
		c, mv := atMostLits(vars, bound.Value, next)
		return c, mv, nil
	case AtLeast:
		c, mv := atMostLits(negateAll(vars), n-bound.Value, next)
		return c, mv, nil
	default: // Equal
		c1, mv1 := atMostLits(vars, bound.Value, next)
		clauses = append(clauses, c1...)
		next = mv1 + 1
		c2, mv2 := atMostLits(negateAll(vars), n-bound.Value, next)
		clauses = append(clauses, c2...)
		return clauses, mv2, nil
	}
}

// atMostLits encodes "at most k of lits are true" using Sinz's sequential
// counter over register variables s_{i,j} (0<=i<n-1, 1<=j<=k), meaning "at
// least j of lits[0..i] are true". Fresh variables start at startIdx and
// are allocated row-major. Returns the clauses and the highest variable id
// used (startIdx-1 if no registers were needed).
func atMostLits(lits []int, k int, startIdx int) ([][]int, int) {
	n := len(lits)
	if k < 0 {
		// Unsatisfiable: no count of true literals is below zero, so the
		// result is a single empty clause.
		return [][]int{{}}, startIdx - 1
	}
	if k >= n {
		return nil, startIdx - 1 // trivially satisfied, no constraint needed
	}
	if k == 0 {
		clauses := make([][]int, 0, n)
		for _, l := range lits {
			clauses = append(clauses, []int{-l})
		}
		return clauses, startIdx - 1
	}
	if n <= 1 {
		return nil, startIdx - 1
	}

	// s[i][j] register variable id, i in [0,n-2], j in [1,k]
	s := make([][]int, n-1)
	next := startIdx
	for i := range s {
		s[i] = make([]int, k+1) // index 0 unused
		for j := 1; j <= k; j++ {
			s[i][j] = next
			next++
		}
	}

	var clauses [][]int
	x := lits

	clauses = append(clauses, []int{-x[0], s[0][1]})
	for j := 2; j <= k; j++ {
		clauses = append(clauses, []int{-s[0][j]})
	}

	for i := 1; i <= n-2; i++ {
		clauses = append(clauses, []int{-x[i], s[i][1]})
		clauses = append(clauses, []int{-s[i-1][1], s[i][1]})
		for j := 2; j <= k; j++ {
			clauses = append(clauses, []int{-x[i], -s[i-1][j-1], s[i][j]})
			clauses = append(clauses, []int{-s[i-1][j], s[i][j]})
		}
		clauses = append(clauses, []int{-x[i], -s[i-1][k]})
	}
	clauses = append(clauses, []int{-x[n-1], -s[n-2][k]})

	maxVar := next - 1
	return clauses, maxVar
}

func negateAll(vars []int) []int {
	out := make([]int, len(vars))
	for i, v := range vars {
		out[i] = -v
	}
	return out
}

// sortedCopy returns a sorted copy of vars, used by callers that need a
// deterministic iteration order without mutating the caller's slice.
func sortedCopy(vars []int) []int {
	out := append([]int(nil), vars...)
	sort.Ints(out)
	return out
}
