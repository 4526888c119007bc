package sortedset

import (
	"github.com/trvswgnr/collectionmaxxing"
	"github.com/trvswgnr/collectionmaxxing/sortedmap"
)

// Option is an option for New.
type Option[T collectionmaxxing.ElementConstraint] interface {
	apply(o *options[T])
}

type optionFunc[T collectionmaxxing.ElementConstraint] func(o *options[T])

func (f optionFunc[T]) apply(o *options[T]) {
	f(o)
}

// WithEqual sets the equality function used to decide element membership.
// It panics when equal is nil.
func WithEqual[T collectionmaxxing.ElementConstraint](equal collectionmaxxing.EqualFunc[T]) Option[T] {
	if equal == nil {
		panic("equal must not be nil")
	}
	return optionFunc[T](func(o *options[T]) {
		o.equal = equal
	})
}

// WithCompare sets the comparison function that orders iteration.
// It panics when compare is nil.
func WithCompare[T collectionmaxxing.ElementConstraint](compare collectionmaxxing.CompareFunc[T]) Option[T] {
	if compare == nil {
		panic("compare must not be nil")
	}
	return optionFunc[T](func(o *options[T]) {
		o.compare = compare
	})
}

type options[T collectionmaxxing.ElementConstraint] struct {
	equal   collectionmaxxing.EqualFunc[T]
	compare collectionmaxxing.CompareFunc[T]
}

// mapOptions translates the set options into options for the backing map.
// Unset fields are left to the map's own defaults.
func (o options[T]) mapOptions() []sortedmap.Option[T, struct{}] {
	var opts []sortedmap.Option[T, struct{}]
	if o.equal != nil {
		opts = append(opts, sortedmap.WithEqual[T, struct{}](o.equal))
	}
	if o.compare != nil {
		opts = append(opts, sortedmap.WithCompare[T, struct{}](o.compare))
	}
	return opts
}
