package sortedmap

import (
	"github.com/trvswgnr/collectionmaxxing"
)

// Option is the interface for the options of the map.
type Option[K collectionmaxxing.ElementConstraint, V collectionmaxxing.ValueConstraint] interface {
	apply(*options[K, V])
}

type optionFunc[K collectionmaxxing.ElementConstraint, V collectionmaxxing.ValueConstraint] func(*options[K, V])

func (f optionFunc[K, V]) apply(o *options[K, V]) {
	f(o)
}

// WithEqual sets the key equality function of the map.
// It replaces the default identity resolution for equality.
// The equality function must not be nil.
func WithEqual[K collectionmaxxing.ElementConstraint, V collectionmaxxing.ValueConstraint](equal collectionmaxxing.EqualFunc[K]) Option[K, V] {
	if equal == nil {
		panic("equal must not be nil")
	}
	return optionFunc[K, V](func(o *options[K, V]) {
		o.equal = equal
		o.customEqual = true
	})
}

// WithCompare sets the key ordering function of the map.
// It replaces the default identity resolution for ordering.
// The ordering function must not be nil and must be consistent with the
// equality in use.
func WithCompare[K collectionmaxxing.ElementConstraint, V collectionmaxxing.ValueConstraint](compare collectionmaxxing.CompareFunc[K]) Option[K, V] {
	if compare == nil {
		panic("compare must not be nil")
	}
	return optionFunc[K, V](func(o *options[K, V]) {
		o.compare = compare
	})
}

// WithKeyHash sets the key hash function used for the bucket index.
// The hash function must be consistent with the key equality in use:
// equal keys must hash to the same value.
func WithKeyHash[K collectionmaxxing.ElementConstraint, V collectionmaxxing.ValueConstraint](f func(K) int) Option[K, V] {
	if f == nil {
		panic("key hash must not be nil")
	}
	return optionFunc[K, V](func(o *options[K, V]) {
		o.hashKey = func(key any) int {
			return f(key.(K))
		}
	})
}

type options[K collectionmaxxing.ElementConstraint, V collectionmaxxing.ValueConstraint] struct {
	equal       collectionmaxxing.EqualFunc[K]
	compare     collectionmaxxing.CompareFunc[K]
	hashKey     func(any) int
	customEqual bool
}

func defaultOptions[K collectionmaxxing.ElementConstraint, V collectionmaxxing.ValueConstraint]() options[K, V] {
	return options[K, V]{
		equal:   collectionmaxxing.DefaultEqual[K](),
		compare: collectionmaxxing.DefaultCompare[K](),
	}
}
