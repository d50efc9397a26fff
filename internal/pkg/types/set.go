// Package types holds small generic containers shared across packages.
package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is a generic hash set backed by map[T]struct{}.
//
// A Set is mutable: Add and Delete modify it in place. The nil Set is a
// valid empty set for reads; use NewSet before writing.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes one or more elements from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set. Cloning a nil Set yields an
// empty, writable Set.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	maps.Copy(out, s)
	return out
}

// ToIter returns an iterator over all elements in the set.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the elements in unspecified order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}
