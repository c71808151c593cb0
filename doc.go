// Package pvector implements a persistent, bit-partitioned radix-balanced
// vector, along with a transient companion for efficient batch mutation.
// Both are facades over internal/trie, the same way rope.Rope in the
// teacher module fronts its own internal node tree: Vector and Transient
// carry no tree-walking logic themselves, only the bookkeeping to present
// a value-oriented API over it.
//
// Values never observably change. Every mutating Vector method returns a
// new Vector; the receiver and every other Vector derived from it keep
// reading exactly what they read before the call. Transient relaxes that
// for a single exclusively-held value, trading the immutability guarantee
// for in-place mutation during a batch of pushes, then converts back to an
// ordinary persistent Vector.
package pvector
