package cardinality

// Encoder turns a Bound over vars into CNF clauses. Clauses reference vars
// by their original ids plus, where needed, fresh auxiliary variables
// allocated contiguously starting at startIdx. maxVar is the highest
// variable id used anywhere in the returned clauses (startIdx-1 if no
// auxiliaries were needed).
//
// Two implementations exist: ExternalEncoder shells out to a pseudo-Boolean
// encoder (spec.md §4.3's primary path) and SequentialEncoder is the
// in-process fallback spec.md §4.3 explicitly allows as a substitute.
type Encoder interface {
	Encode(vars []int, bound Bound, startIdx int) (clauses [][]int, maxVar int, err error)
}
