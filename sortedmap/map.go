package sortedmap

import (
	"iter"
	"slices"

	"github.com/trvswgnr/collectionmaxxing"
	"github.com/trvswgnr/collectionmaxxing/internal/iterutil"
	"github.com/trvswgnr/collectionmaxxing/internal/keyidx"
	"github.com/trvswgnr/collectionmaxxing/internal/projection"
)

type entry[K collectionmaxxing.ElementConstraint, V collectionmaxxing.ValueConstraint] struct {
	key   K
	value V
}

// Map is an associative container with configurable key identity.
// It stores at most one value per equality class of keys and iterates
// in the order of its comparison function.
type Map[K collectionmaxxing.ElementConstraint, V collectionmaxxing.ValueConstraint] struct {
	entries    []*entry[K, V]
	buckets    map[int][]*entry[K, V]
	projection projection.Cache[collectionmaxxing.Entry[K, V]]
	options    options[K, V]
}

// New creates an empty map.
// Key equality and ordering resolve once, at construction: an explicit
// option wins, then an Equal or Compare method of the key type, then the
// built-in fallbacks.
//
// Keys of a built-in numeric or string type with default equality are
// resolved through a hash bucket index; every other configuration resolves
// keys with a linear scan over the entries.
func New[K collectionmaxxing.ElementConstraint, V collectionmaxxing.ValueConstraint](opts ...Option[K, V]) *Map[K, V] {
	options := defaultOptions[K, V]()
	for _, opt := range opts {
		opt.apply(&options)
	}

	if options.hashKey == nil && !options.customEqual {
		if f, ok := keyidx.ForType[K](); ok {
			options.hashKey = f
		}
	}

	m := &Map[K, V]{options: options}
	if options.hashKey != nil {
		m.buckets = map[int][]*entry[K, V]{}
	}
	return m
}

// Collect creates a map from a sequence of key-value pairs.
// Later pairs overwrite the values of earlier equal keys.
func Collect[K collectionmaxxing.ElementConstraint, V collectionmaxxing.ValueConstraint](seq iter.Seq2[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New[K, V](opts...)
	for key, value := range seq {
		m.Set(key, value)
	}
	return m
}

// From creates a map from a slice of entries.
// Later entries overwrite the values of earlier equal keys.
func From[K collectionmaxxing.ElementConstraint, V collectionmaxxing.ValueConstraint](entries []collectionmaxxing.Entry[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New[K, V](opts...)
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set stores a value under the given key.
// If an equal key is already present, only its value is replaced: the key
// instance stored at first insertion stays the canonical one.
func (m *Map[K, V]) Set(key K, value V) {
	m.projection.Invalidate()

	if e, ok := m.lookup(key); ok {
		e.value = value
		return
	}

	e := &entry[K, V]{key: key, value: value}
	m.entries = append(m.entries, e)
	if m.buckets != nil {
		h := m.options.hashKey(key)
		m.buckets[h] = append(m.buckets[h], e)
	}
}

// Get retrieves the value stored under a key equal to the given one.
// The second return value reports whether such a key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if e, ok := m.lookup(key); ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Has reports whether a key equal to the given one is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.lookup(key)
	return ok
}

// Delete removes the entry stored under a key equal to the given one.
// It reports whether an entry was removed. Removing an absent key leaves
// the sorted projection intact.
func (m *Map[K, V]) Delete(key K) bool {
	i := slices.IndexFunc(m.entries, func(e *entry[K, V]) bool {
		return m.options.equal(e.key, key)
	})
	if i < 0 {
		return false
	}

	e := m.entries[i]
	m.entries = slices.Delete(m.entries, i, i+1)
	if m.buckets != nil {
		m.dropFromBucket(e)
	}
	m.projection.Invalidate()
	return true
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.entries = nil
	if m.buckets != nil {
		clear(m.buckets)
	}
	m.projection.Invalidate()
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// All returns an iterator over key-value pairs in comparison order.
// Keys that compare as equal keep their insertion order.
// Each traversal sees the entries as of the moment it starts; mutations
// made while a traversal runs do not affect it.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.sorted() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in comparison order.
// It has the same traversal semantics as All.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return iterutil.Map(m.Entries(), func(e collectionmaxxing.Entry[K, V]) K {
		return e.Key
	})
}

// Values returns an iterator over the values in comparison order of their keys.
// It has the same traversal semantics as All.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return iterutil.Map(m.Entries(), func(e collectionmaxxing.Entry[K, V]) V {
		return e.Value
	})
}

// Entries returns an iterator over copies of the entries in comparison order.
// It has the same traversal semantics as All.
func (m *Map[K, V]) Entries() iter.Seq[collectionmaxxing.Entry[K, V]] {
	return func(yield func(collectionmaxxing.Entry[K, V]) bool) {
		for _, e := range m.sorted() {
			if !yield(e) {
				return
			}
		}
	}
}

// sorted returns the memoized sorted projection, building it if needed.
func (m *Map[K, V]) sorted() []collectionmaxxing.Entry[K, V] {
	return m.projection.Project(m.snapshot, m.compareEntries)
}

func (m *Map[K, V]) snapshot() []collectionmaxxing.Entry[K, V] {
	entries := make([]collectionmaxxing.Entry[K, V], len(m.entries))
	for i, e := range m.entries {
		entries[i] = collectionmaxxing.Entry[K, V]{Key: e.key, Value: e.value}
	}
	return entries
}

func (m *Map[K, V]) compareEntries(a, b collectionmaxxing.Entry[K, V]) int {
	return m.options.compare(a.Key, b.Key)
}

// lookup resolves the entry stored under a key equal to the given one.
func (m *Map[K, V]) lookup(key K) (*entry[K, V], bool) {
	if m.buckets != nil {
		for _, e := range m.buckets[m.options.hashKey(key)] {
			if m.options.equal(e.key, key) {
				return e, true
			}
		}
		return nil, false
	}

	for _, e := range m.entries {
		if m.options.equal(e.key, key) {
			return e, true
		}
	}
	return nil, false
}

func (m *Map[K, V]) dropFromBucket(e *entry[K, V]) {
	h := m.options.hashKey(e.key)
	bucket := m.buckets[h]
	for i, be := range bucket {
		if be == e {
			bucket = slices.Delete(bucket, i, i+1)
			break
		}
	}
	if len(bucket) == 0 {
		delete(m.buckets, h)
		return
	}
	m.buckets[h] = bucket
}
