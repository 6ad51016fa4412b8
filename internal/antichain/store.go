// Package antichain maintains the minimal-by-inclusion collection of
// distinguishing-variable-support sets used by the two-step uniqueness
// constraint (ilp_encoding.py's _two_step_uniqueness_constraint): whenever a
// newly computed distinguishing set is a superset of one already kept, it
// adds no information and is dropped; whenever it is a subset of one
// already kept, the larger one is now redundant and is evicted.
package antichain

import "github.com/bits-and-blooms/bitset"

// Store holds the current antichain (no element is a subset of another).
type Store struct {
	sets []*bitset.BitSet
	ids  [][]int
}

// NewStore returns an empty antichain.
func NewStore() *Store { return &Store{} }

// Insert adds ids if it is not dominated by (is not a superset of) a set
// already present, evicting any present set that ids dominates. Reports
// whether ids was kept.
func (s *Store) Insert(ids []int) bool {
	if len(ids) == 0 {
		return false
	}
	newBS := toBitSet(ids)

	for _, existing := range s.sets {
		if subsetOf(existing, newBS) {
			return false
		}
	}

	kept := s.sets[:0]
	keptIDs := s.ids[:0]
	for i, existing := range s.sets {
		if subsetOf(newBS, existing) {
			continue
		}
		kept = append(kept, existing)
		keptIDs = append(keptIDs, s.ids[i])
	}
	s.sets = append(kept, newBS)
	s.ids = append(keptIDs, append([]int(nil), ids...))
	return true
}

// Sets returns the ids of every set currently kept, in insertion-survival
// order (not sorted).
func (s *Store) Sets() [][]int { return s.ids }

// Len returns the number of sets currently kept.
func (s *Store) Len() int { return len(s.ids) }

func toBitSet(ids []int) *bitset.BitSet {
	max := uint(0)
	for _, v := range ids {
		if uint(v) > max {
			max = uint(v)
		}
	}
	bs := bitset.New(max + 1)
	for _, v := range ids {
		bs.Set(uint(v))
	}
	return bs
}

// subsetOf reports whether a is a subset of b.
func subsetOf(a, b *bitset.BitSet) bool {
	return b.IsSuperSet(a)
}
