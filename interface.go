package collectionmaxxing

import "iter"

// ElementConstraint is an interface for element constraints.
// Any type can be an element of an identity-configured collection;
// equality and ordering come from the collection's identity functions.
type ElementConstraint interface {
	any
}

// KeyConstraint is an interface for key constraints of hash-backed collections.
type KeyConstraint interface {
	comparable
}

// ValueConstraint is an interface for value constraints.
type ValueConstraint interface {
	any
}

// Entry is a key-value pair.
type Entry[K ElementConstraint, V ValueConstraint] struct {
	// Key is the key of the entry.
	Key K

	// Value is the value associated with the key.
	Value V
}

// Set is the read side of a set collection.
// It is the contract the set algebra operations work against,
// so any membership container can participate in them.
type Set[T ElementConstraint] interface {
	// Has reports whether an element equal to v is in the set.
	// Equality is defined by the implementation.
	Has(v T) bool

	// Len returns the number of elements in the set.
	Len() int

	// All returns an iterator over the elements of the set.
	// The iteration order is defined by the implementation.
	All() iter.Seq[T]
}

// Bag is an interface for multiset implementations.
// A bag keeps a count per distinct element instead of at most one occurrence.
// This module ships no bag implementation; the interface pins the shape an
// implementation must have to interoperate with the Set contract consumers.
type Bag[T ElementConstraint] interface {
	// Add inserts one occurrence of v and returns the new count for v.
	Add(v T) int

	// Remove removes one occurrence of v and returns the remaining count for v.
	// Removing an absent element leaves the bag unchanged and returns 0.
	Remove(v T) int

	// Count returns the number of occurrences of v.
	Count(v T) int

	// Distinct returns the number of distinct elements.
	Distinct() int

	// Len returns the total number of occurrences across all elements.
	Len() int

	// All returns an iterator that yields each element once per occurrence.
	All() iter.Seq[T]
}
