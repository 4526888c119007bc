package sortedset

import (
	"iter"

	"github.com/trvswgnr/collectionmaxxing"
	"github.com/trvswgnr/collectionmaxxing/setops"
	"github.com/trvswgnr/collectionmaxxing/sortedmap"
)

// Set is a sorted set of elements of type T.
// It is backed by a sortedmap.Map keyed by the elements themselves.
type Set[T collectionmaxxing.ElementConstraint] struct {
	m       *sortedmap.Map[T, struct{}]
	options options[T]
}

var _ collectionmaxxing.Set[uint8] = (*Set[uint8])(nil)

// New creates an empty sorted set.
func New[T collectionmaxxing.ElementConstraint](opts ...Option[T]) *Set[T] {
	var options options[T]
	for _, opt := range opts {
		opt.apply(&options)
	}
	return newFromOptions(options)
}

func newFromOptions[T collectionmaxxing.ElementConstraint](options options[T]) *Set[T] {
	return &Set[T]{
		m:       sortedmap.New[T, struct{}](options.mapOptions()...),
		options: options,
	}
}

// Of creates a sorted set of the given elements.
// Use Collect to build a set with options.
func Of[T collectionmaxxing.ElementConstraint](elems ...T) *Set[T] {
	s := New[T]()
	for _, v := range elems {
		s.Add(v)
	}
	return s
}

// Collect creates a sorted set of the elements of seq.
func Collect[T collectionmaxxing.ElementConstraint](seq iter.Seq[T], opts ...Option[T]) *Set[T] {
	s := New[T](opts...)
	for v := range seq {
		s.Add(v)
	}
	return s
}

// Add inserts v into the set. When an element equal to v is already
// present the set is left as it is: the element stored first stays the
// canonical instance.
func (s *Set[T]) Add(v T) {
	if s.m.Has(v) {
		return
	}
	s.m.Set(v, struct{}{})
}

// Has reports whether an element equal to v is in the set.
func (s *Set[T]) Has(v T) bool {
	return s.m.Has(v)
}

// Delete removes the element equal to v from the set.
// It reports whether an element was removed.
func (s *Set[T]) Delete(v T) bool {
	return s.m.Delete(v)
}

// Clear removes all elements from the set.
func (s *Set[T]) Clear() {
	s.m.Clear()
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.m.Len()
}

// All returns an iterator over the elements of the set in sorted order.
// Each traversal observes the set as of the moment it starts.
func (s *Set[T]) All() iter.Seq[T] {
	return s.m.Keys()
}

// Union returns a new set of the elements that are in s, in other, or in
// both. The result carries the identity configuration of s.
func (s *Set[T]) Union(other collectionmaxxing.Set[T]) *Set[T] {
	return s.collect(setops.Union[T](s, other))
}

// Intersection returns a new set of the elements that are in both s and
// other. The result carries the identity configuration of s.
func (s *Set[T]) Intersection(other collectionmaxxing.Set[T]) *Set[T] {
	return s.collect(setops.Intersection[T](s, other))
}

// Difference returns a new set of the elements of s that are not in other.
// The result carries the identity configuration of s.
func (s *Set[T]) Difference(other collectionmaxxing.Set[T]) *Set[T] {
	return s.collect(setops.Difference[T](s, other))
}

// SymmetricDifference returns a new set of the elements that are in exactly
// one of s and other. The result carries the identity configuration of s.
func (s *Set[T]) SymmetricDifference(other collectionmaxxing.Set[T]) *Set[T] {
	return s.collect(setops.SymmetricDifference[T](s, other))
}

// IsSubsetOf reports whether every element of s is in other.
func (s *Set[T]) IsSubsetOf(other collectionmaxxing.Set[T]) bool {
	return setops.IsSubset[T](s, other)
}

// IsSupersetOf reports whether every element of other is in s.
func (s *Set[T]) IsSupersetOf(other collectionmaxxing.Set[T]) bool {
	return setops.IsSuperset[T](s, other)
}

// IsDisjointFrom reports whether s and other have no element in common.
func (s *Set[T]) IsDisjointFrom(other collectionmaxxing.Set[T]) bool {
	return setops.IsDisjoint[T](s, other)
}

func (s *Set[T]) collect(seq iter.Seq[T]) *Set[T] {
	result := newFromOptions(s.options)
	for v := range seq {
		result.Add(v)
	}
	return result
}
