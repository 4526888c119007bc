// Package sortedmap provides an associative container with configurable key
// identity and sorted iteration.
//
// A Map stores at most one value per equality class of keys: the key instance
// given at first insertion stays the canonical one, and later writes with an
// equal key only replace the value. Lookups resolve keys with the map's
// equality function, so key types are not limited to comparable ones.
//
// Ordered views are computed lazily. The sorted projection is built on the
// first ordered read, memoized, and discarded again on every mutation, so
// bursts of writes pay for a single sort.
//
// A Map is not safe for concurrent use.
package sortedmap
