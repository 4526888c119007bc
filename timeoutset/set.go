package timeoutset

import (
	"iter"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/trvswgnr/collectionmaxxing"
	"github.com/trvswgnr/collectionmaxxing/internal/panicguard"
)

// Set is a set whose elements are evicted after a per-element timeout.
// Elements are compared with ==.
type Set[T collectionmaxxing.KeyConstraint] struct {
	options        options[T]
	defaultTimeout time.Duration

	mu         sync.Mutex
	items      map[T]*item[T]
	generation uint64
}

// item is the per-element record. The generation ties a pending timer to
// the insertion that armed it: a timer whose generation no longer matches
// must not evict.
type item[T collectionmaxxing.KeyConstraint] struct {
	timer      collectionmaxxing.Timer
	expiresAt  time.Time
	generation uint64
}

var _ collectionmaxxing.Set[uint8] = (*Set[uint8])(nil)

// New creates an empty set whose elements are evicted defaultTimeout after
// insertion. It panics when defaultTimeout is not positive.
func New[T collectionmaxxing.KeyConstraint](defaultTimeout time.Duration, opts ...Option[T]) *Set[T] {
	if defaultTimeout <= 0 {
		panic("defaultTimeout must be positive")
	}
	options := defaultOptions[T]()
	for _, opt := range opts {
		opt.apply(&options)
	}
	return &Set[T]{
		options:        options,
		defaultTimeout: defaultTimeout,
		items:          map[T]*item[T]{},
	}
}

// Of creates a set of the given elements, each with the default timeout.
func Of[T collectionmaxxing.KeyConstraint](defaultTimeout time.Duration, elems ...T) *Set[T] {
	s := New[T](defaultTimeout)
	for _, v := range elems {
		s.Add(v)
	}
	return s
}

// Add inserts v with the default timeout.
// When v is already present its timer restarts from now.
func (s *Set[T]) Add(v T) {
	s.AddWithTimeout(v, s.defaultTimeout)
}

// AddWithTimeout inserts v with the given timeout instead of the default.
// When v is already present its timer restarts from now with the given
// timeout. It panics when timeout is not positive.
func (s *Set[T]) AddWithTimeout(v T, timeout time.Duration) {
	if timeout <= 0 {
		panic("timeout must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(v, timeout)
}

// insertLocked arms a fresh timer for v, cancelling a pending one.
func (s *Set[T]) insertLocked(v T, timeout time.Duration) {
	if old, ok := s.items[v]; ok {
		old.timer.Stop()
	}
	s.generation++
	gen := s.generation
	s.items[v] = &item[T]{
		timer:      s.options.scheduler.AfterFunc(timeout, func() { s.expire(v, gen) }),
		expiresAt:  s.options.clock.Now().Add(timeout),
		generation: gen,
	}
}

// Delete removes v and cancels its timer.
// It reports whether the element was present.
func (s *Set[T]) Delete(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[v]
	if !ok {
		return false
	}
	it.timer.Stop()
	delete(s.items, v)
	return true
}

// Refresh restarts the timer of v with the default timeout, discarding a
// per-element override given at insertion.
// It reports whether the element was present.
func (s *Set[T]) Refresh(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[v]; !ok {
		return false
	}
	s.insertLocked(v, s.defaultTimeout)
	return true
}

// Has reports whether v is in the set.
func (s *Set[T]) Has(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[v]
	return ok
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// TimeRemaining returns the time left until v is evicted and whether v is
// in the set. The duration can be negative when the timer has fired but
// the eviction has not gone through the lock yet.
func (s *Set[T]) TimeRemaining(v T) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[v]
	if !ok {
		return 0, false
	}
	return it.expiresAt.Sub(s.options.clock.Now()), true
}

// Clear removes all elements and cancels their timers.
// The eviction callback is not invoked.
func (s *Set[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		it.timer.Stop()
	}
	clear(s.items)
}

// All returns an iterator over a snapshot of the elements taken when the
// traversal starts. The iteration order is not specified.
func (s *Set[T]) All() iter.Seq[T] {
	return iter.Seq[T](func(yield func(v T) bool) {
		s.mu.Lock()
		elems := slices.Collect(maps.Keys(s.items))
		s.mu.Unlock()
		for _, v := range elems {
			if !yield(v) {
				return
			}
		}
	})
}

// expire is the timer callback for the element v armed at generation gen.
func (s *Set[T]) expire(v T, gen uint64) {
	s.mu.Lock()
	it, ok := s.items[v]
	if !ok || it.generation != gen {
		// The element was deleted or re-armed after this timer fired.
		s.mu.Unlock()
		return
	}
	delete(s.items, v)
	s.mu.Unlock()

	s.notifyEvicted(v)
}

func (s *Set[T]) notifyEvicted(v T) {
	if s.options.onEvict == nil {
		return
	}
	err := panicguard.Guard(func() {
		s.options.onEvict(v)
	})
	if err == nil {
		return
	}
	if s.options.onCallbackError == nil {
		panic(err)
	}
	s.options.onCallbackError(err)
}
