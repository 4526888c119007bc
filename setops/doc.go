// Package setops implements set algebra over the Set contract.
//
// The operations work against any Set implementation and never mutate their
// operands. The sequence-returning operations are lazy: the returned
// sequence consults its operands during traversal, so mutations between
// building a sequence and ranging over it are observed. Collect a sequence
// into a concrete set to pin a result.
//
// Membership is always judged by the probed operand's Has. When the two
// operands disagree on element equality the operations are not symmetric:
// Union keeps the first operand's instance of an element present in both,
// and Intersection and IsDisjoint probe the larger operand with the
// elements of the smaller one.
package setops
