package hashset

import (
	"iter"
	"maps"

	"github.com/trvswgnr/collectionmaxxing"
	"github.com/trvswgnr/collectionmaxxing/internal/iterutil"
)

// Set is an unordered set of comparable elements.
// The zero Set is not ready for use; create one with New, Of or Collect.
type Set[T collectionmaxxing.KeyConstraint] struct {
	items map[T]struct{}
}

var _ collectionmaxxing.Set[uint8] = (*Set[uint8])(nil)

// New creates an empty set.
func New[T collectionmaxxing.KeyConstraint]() *Set[T] {
	return &Set[T]{items: map[T]struct{}{}}
}

// Of creates a set of the given elements.
func Of[T collectionmaxxing.KeyConstraint](elems ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(elems))}
	for _, v := range elems {
		s.items[v] = struct{}{}
	}
	return s
}

// Collect creates a set of the elements of seq.
func Collect[T collectionmaxxing.KeyConstraint](seq iter.Seq[T]) *Set[T] {
	s := New[T]()
	s.AddSeq(seq)
	return s
}

// Add inserts v into the set.
func (s *Set[T]) Add(v T) {
	s.items[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s *Set[T]) Has(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Delete removes v from the set and reports whether it was present.
func (s *Set[T]) Delete(v T) bool {
	_, ok := s.items[v]
	if ok {
		delete(s.items, v)
	}
	return ok
}

// Clear removes all elements from the set.
func (s *Set[T]) Clear() {
	clear(s.items)
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Clone returns a copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{items: maps.Clone(s.items)}
}

// All returns an iterator over the elements of the set.
// The iteration order is not specified.
func (s *Set[T]) All() iter.Seq[T] {
	return maps.Keys(s.items)
}

// AddSeq inserts all elements of the given sequences into the set.
// It reports whether the set changed.
func (s *Set[T]) AddSeq(seqs ...iter.Seq[T]) bool {
	changed := false
	for v := range iterutil.Concat(seqs...) {
		if _, ok := s.items[v]; !ok {
			s.items[v] = struct{}{}
			changed = true
		}
	}
	return changed
}

// DeleteSeq removes all elements of the given sequences from the set.
// It reports whether the set changed.
func (s *Set[T]) DeleteSeq(seqs ...iter.Seq[T]) bool {
	changed := false
	for v := range iterutil.Concat(seqs...) {
		if _, ok := s.items[v]; ok {
			delete(s.items, v)
			changed = true
		}
	}
	return changed
}

// RetainSeq removes the elements of the set that are in none of the given
// sequences. It reports whether the set changed.
func (s *Set[T]) RetainSeq(seqs ...iter.Seq[T]) bool {
	keep := Collect(iterutil.Concat(seqs...))
	before := len(s.items)
	maps.DeleteFunc(s.items, func(v T, _ struct{}) bool {
		return !keep.Has(v)
	})
	return len(s.items) != before
}
