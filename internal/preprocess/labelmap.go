package preprocess

// LabelMap is the bijection between a canonical vertex id (1..N) and the
// original vertex label as read by the loader. It is preserved verbatim in
// output headers so downstream results can be back-mapped.
type LabelMap struct {
	toLabel map[int]string
	toID    map[string]int
}

func newLabelMap(n int) *LabelMap {
	return &LabelMap{
		toLabel: make(map[int]string, n),
		toID:    make(map[string]int, n),
	}
}

func (m *LabelMap) set(id int, label string) {
	m.toLabel[id] = label
	m.toID[label] = id
}

// Label returns the original label for canonical id, and whether it exists.
func (m *LabelMap) Label(id int) (string, bool) {
	l, ok := m.toLabel[id]
	return l, ok
}

// ID returns the canonical id for an original label, and whether it exists.
func (m *LabelMap) ID(label string) (int, bool) {
	id, ok := m.toID[label]
	return id, ok
}

// Len reports the number of mapped ids.
func (m *LabelMap) Len() int { return len(m.toLabel) }

// Ordered returns canonical ids 1..N paired with their labels, in id order.
func (m *LabelMap) Ordered() []struct {
	ID    int
	Label string
} {
	out := make([]struct {
		ID    int
		Label string
	}, 0, len(m.toLabel))
	for id := 1; id <= len(m.toLabel); id++ {
		out = append(out, struct {
			ID    int
			Label string
		}{ID: id, Label: m.toLabel[id]})
	}
	return out
}

// TwinMap records, for each canonical id (only present when twin removal
// ran), the original labels of every vertex contracted into it, including
// its own original label.
type TwinMap map[int][]string
