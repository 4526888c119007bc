package setops

import (
	"iter"

	"github.com/trvswgnr/collectionmaxxing"
	"github.com/trvswgnr/collectionmaxxing/internal/iterutil"
)

// Union returns a sequence of the elements that are in a, in b, or in both.
// It yields all of a first, then the elements of b that are not in a.
func Union[T collectionmaxxing.ElementConstraint](a, b collectionmaxxing.Set[T]) iter.Seq[T] {
	return iterutil.Concat(a.All(), iterutil.Filter(b.All(), func(v T) bool {
		return !a.Has(v)
	}))
}

// Intersection returns a sequence of the elements that are in both a and b.
// It yields the elements of the smaller operand that the larger one contains,
// preferring a when the sizes are equal.
func Intersection[T collectionmaxxing.ElementConstraint](a, b collectionmaxxing.Set[T]) iter.Seq[T] {
	small, large := a, b
	if b.Len() < a.Len() {
		small, large = b, a
	}
	return iterutil.Filter(small.All(), func(v T) bool {
		return large.Has(v)
	})
}

// Difference returns a sequence of the elements of a that are not in b.
func Difference[T collectionmaxxing.ElementConstraint](a, b collectionmaxxing.Set[T]) iter.Seq[T] {
	return iterutil.Filter(a.All(), func(v T) bool {
		return !b.Has(v)
	})
}

// SymmetricDifference returns a sequence of the elements that are in exactly
// one of a and b. It yields the elements only in a first, then the elements
// only in b.
func SymmetricDifference[T collectionmaxxing.ElementConstraint](a, b collectionmaxxing.Set[T]) iter.Seq[T] {
	return iterutil.Concat(Difference(a, b), Difference(b, a))
}

// IsSubset reports whether every element of a is in b.
func IsSubset[T collectionmaxxing.ElementConstraint](a, b collectionmaxxing.Set[T]) bool {
	if a.Len() > b.Len() {
		return false
	}
	for v := range a.All() {
		if !b.Has(v) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every element of b is in a.
func IsSuperset[T collectionmaxxing.ElementConstraint](a, b collectionmaxxing.Set[T]) bool {
	return IsSubset(b, a)
}

// IsDisjoint reports whether a and b have no element in common.
// It probes with the elements of the smaller operand.
func IsDisjoint[T collectionmaxxing.ElementConstraint](a, b collectionmaxxing.Set[T]) bool {
	small, large := a, b
	if b.Len() < a.Len() {
		small, large = b, a
	}
	for v := range small.All() {
		if large.Has(v) {
			return false
		}
	}
	return true
}
