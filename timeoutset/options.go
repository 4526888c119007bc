package timeoutset

import (
	"github.com/trvswgnr/collectionmaxxing"
)

// Option is an option for New.
type Option[T collectionmaxxing.KeyConstraint] interface {
	apply(o *options[T])
}

type optionFunc[T collectionmaxxing.KeyConstraint] func(o *options[T])

func (f optionFunc[T]) apply(o *options[T]) {
	f(o)
}

// WithClock sets the clock used to compute expiry deadlines.
// The clock must not be nil and should be the time source of the scheduler.
func WithClock[T collectionmaxxing.KeyConstraint](clock collectionmaxxing.Clock) Option[T] {
	if clock == nil {
		panic("clock must not be nil")
	}
	return optionFunc[T](func(o *options[T]) {
		o.clock = clock
	})
}

// WithScheduler sets the scheduler used to arm expiry timers.
// The scheduler must not be nil.
func WithScheduler[T collectionmaxxing.KeyConstraint](scheduler collectionmaxxing.Scheduler) Option[T] {
	if scheduler == nil {
		panic("scheduler must not be nil")
	}
	return optionFunc[T](func(o *options[T]) {
		o.scheduler = scheduler
	})
}

// WithEvictionCallback sets a callback invoked after an element is evicted
// on expiry. The callback runs on the scheduler's goroutine, outside the
// set's lock, so it may use the set. It is not invoked for Delete or Clear.
func WithEvictionCallback[T collectionmaxxing.KeyConstraint](f func(v T)) Option[T] {
	if f == nil {
		panic("eviction callback must not be nil")
	}
	return optionFunc[T](func(o *options[T]) {
		o.onEvict = f
	})
}

// WithCallbackErrorHandler sets a handler for panics raised by the eviction
// callback. Without a handler a callback panic is raised again on the
// scheduler's goroutine.
func WithCallbackErrorHandler[T collectionmaxxing.KeyConstraint](f func(err error)) Option[T] {
	if f == nil {
		panic("callback error handler must not be nil")
	}
	return optionFunc[T](func(o *options[T]) {
		o.onCallbackError = f
	})
}

type options[T collectionmaxxing.KeyConstraint] struct {
	clock           collectionmaxxing.Clock
	scheduler       collectionmaxxing.Scheduler
	onEvict         func(v T)
	onCallbackError func(err error)
}

func defaultOptions[T collectionmaxxing.KeyConstraint]() options[T] {
	return options[T]{
		clock:     collectionmaxxing.SystemClock,
		scheduler: collectionmaxxing.SystemScheduler,
	}
}
