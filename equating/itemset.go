// SPDX-License-Identifier: MIT

package equating

// ItemSet is an insertion-ordered map from item identifier to ItemModel.
//
// Iteration order is the order in which identifiers were first added;
// replacing the model of an existing identifier keeps its position.
// The zero value is not usable; call NewItemSet.
//
// ItemSet is not safe for concurrent mutation. The objective treats it as
// read-only for its whole lifetime.
type ItemSet struct {
	keys  []string
	index map[string]int
	items map[string]ItemModel
}

// NewItemSet returns an empty set.
func NewItemSet() *ItemSet {
	return &ItemSet{
		index: make(map[string]int),
		items: make(map[string]ItemModel),
	}
}

// Set stores m under id. A new id is appended to the iteration order.
func (s *ItemSet) Set(id string, m ItemModel) {
	if _, ok := s.index[id]; !ok {
		s.index[id] = len(s.keys)
		s.keys = append(s.keys, id)
	}
	s.items[id] = m
}

// Get returns the model stored under id.
func (s *ItemSet) Get(id string) (ItemModel, bool) {
	m, ok := s.items[id]

	return m, ok
}

// Has reports whether id is present.
func (s *ItemSet) Has(id string) bool {
	_, ok := s.index[id]

	return ok
}

// Delete removes id, preserving the relative order of the remaining keys.
func (s *ItemSet) Delete(id string) {
	pos, ok := s.index[id]
	if !ok {
		return
	}
	s.keys = append(s.keys[:pos], s.keys[pos+1:]...)
	for i := pos; i < len(s.keys); i++ {
		s.index[s.keys[i]] = i
	}
	delete(s.index, id)
	delete(s.items, id)
}

// Len returns the number of items.
func (s *ItemSet) Len() int {
	return len(s.keys)
}

// Keys returns a copy of the identifiers in insertion order.
func (s *ItemSet) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)

	return out
}
