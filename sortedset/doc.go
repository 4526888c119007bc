// Package sortedset provides a set with configurable element identity and
// sorted iteration.
//
// A Set keeps at most one element per equality class: adding an element that
// is already present is a no-op, so the instance stored first stays the
// canonical one. Iteration follows the set's comparison function, computed
// lazily the same way sortedmap does it.
//
// The set algebra methods build new sets and never mutate their operands.
// Results carry the identity configuration of the receiver.
//
// A Set is not safe for concurrent use.
package sortedset
