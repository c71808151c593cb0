// Package trie implements a bit-partitioned radix-balanced trie: a
// fixed-fanout tree of inner nodes over fixed-size leaves, plus a tail leaf
// that buffers recent appends. It is the engine behind the persistent and
// transient vector types in the parent package.
//
// The tree shape mirrors a Clojure-style persistent vector. Every mutating
// function accepts an *EditToken: nil means "persistent" (always clone along
// the write path), non-nil means "transient" (mutate in place any node
// already stamped with that token, clone and stamp otherwise). This lets one
// implementation serve both the persistent and transient write paths.
package trie
