// Package hashset provides an unordered set backed by the built-in map.
//
// Elements are compared with ==, so the element type must be comparable and
// the identity options of the other packages do not apply here. The package
// exists as the plain counterpart of sortedset: it satisfies the same Set
// contract and adds the bulk operations AddSeq, DeleteSeq and RetainSeq.
//
// A Set is not safe for concurrent use.
package hashset
