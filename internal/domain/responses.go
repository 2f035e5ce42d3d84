package domain

import (
	"maps"
	"slices"
)

// Answer is the constraint satisfied by every response value type.
type Answer interface {
	comparable
	Valid() bool
}

// Responses maps item keys to the answer chosen for them.
// The zero value is an empty, usable set. Values are immutable: With
// returns a copy so earlier snapshots never change.
type Responses[V Answer] struct {
	values map[ItemKey]V
}

// NewResponses builds a response set from an initial mapping.
func NewResponses[V Answer](initial map[ItemKey]V) Responses[V] {
	return Responses[V]{values: maps.Clone(initial)}
}

// With returns a copy of r with key set to v. Last write wins.
func (r Responses[V]) With(key ItemKey, v V) Responses[V] {
	if cur, ok := r.values[key]; ok && cur == v {
		return r
	}
	next := make(map[ItemKey]V, len(r.values)+1)
	maps.Copy(next, r.values)
	next[key] = v
	return Responses[V]{values: next}
}

// Get returns the answer recorded for key.
func (r Responses[V]) Get(key ItemKey) (V, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of answered items.
func (r Responses[V]) Len() int { return len(r.values) }

// Keys returns the answered keys in sorted order.
func (r Responses[V]) Keys() []ItemKey {
	return slices.Sorted(maps.Keys(r.values))
}

// Values returns the answers ordered by key.
func (r Responses[V]) Values() []V {
	out := make([]V, 0, len(r.values))
	for _, k := range r.Keys() {
		out = append(out, r.values[k])
	}
	return out
}

// Count returns how many answers satisfy pred.
func (r Responses[V]) Count(pred func(V) bool) int {
	n := 0
	for _, v := range r.values {
		if pred(v) {
			n++
		}
	}
	return n
}

// Map returns a copy of the underlying mapping.
func (r Responses[V]) Map() map[ItemKey]V {
	return maps.Clone(r.values)
}
