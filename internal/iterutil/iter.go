package iterutil

import (
	"iter"
)

// Map returns a new iterator that applies the function to each value from the input iterator.
// The output iterator yields the results of the function calls.
func Map[V, R any](seq iter.Seq[V], f func(V) R) iter.Seq[R] {
	return iter.Seq[R](func(yield func(R) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	})
}

// Filter returns a new iterator that yields the values from the input iterator
// for which keep returns true. The order of the output is the same as the input.
func Filter[V any](seq iter.Seq[V], keep func(V) bool) iter.Seq[V] {
	return iter.Seq[V](func(yield func(V) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	})
}

// Concat returns a new iterator that yields all values of each input iterator in order.
func Concat[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return iter.Seq[V](func(yield func(V) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	})
}
