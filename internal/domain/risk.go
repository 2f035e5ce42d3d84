package domain

import (
	"maps"
	"slices"
)

// Risk is a critical risk a manufacturer can flag.
type Risk struct {
	ID    string
	Label string
}

// RiskSet is an unordered set of selected risk ids.
type RiskSet struct {
	ids map[string]struct{}
}

// NewRiskSet builds a set from ids, ignoring duplicates.
func NewRiskSet(ids ...string) RiskSet {
	s := RiskSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Toggle returns a copy with id added if absent or removed if present.
func (s RiskSet) Toggle(id string) RiskSet {
	next := make(map[string]struct{}, len(s.ids)+1)
	maps.Copy(next, s.ids)
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return RiskSet{ids: next}
}

// Has reports whether id is selected.
func (s RiskSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected risks.
func (s RiskSet) Len() int { return len(s.ids) }

// IDs returns the selected ids in sorted order.
func (s RiskSet) IDs() []string {
	return slices.Sorted(maps.Keys(s.ids))
}

// Equal reports whether both sets hold the same ids.
func (s RiskSet) Equal(o RiskSet) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for id := range s.ids {
		if !o.Has(id) {
			return false
		}
	}
	return true
}
