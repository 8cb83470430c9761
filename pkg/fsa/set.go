package fsa

import (
	"fmt"
	"sort"
	"strings"
)

// Set is an unordered collection of comparable values.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding the given items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// Add inserts items into the set.
func (s Set[T]) Add(items ...T) {
	for _, it := range items {
		s[it] = struct{}{}
	}
}

// Has reports whether x is a member of the set.
func (s Set[T]) Has(x T) bool {
	_, ok := s[x]
	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s)
}

// Clone returns an independent copy. Cloning a nil set yields an empty set.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for x := range s {
		out[x] = struct{}{}
	}
	return out
}

// Union returns s ∪ o.
func (s Set[T]) Union(o Set[T]) Set[T] {
	out := s.Clone()
	for x := range o {
		out[x] = struct{}{}
	}
	return out
}

// Intersect returns s ∩ o.
func (s Set[T]) Intersect(o Set[T]) Set[T] {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set[T])
	for x := range small {
		if large.Has(x) {
			out[x] = struct{}{}
		}
	}
	return out
}

// Minus returns s \ o.
func (s Set[T]) Minus(o Set[T]) Set[T] {
	out := make(Set[T])
	for x := range s {
		if !o.Has(x) {
			out[x] = struct{}{}
		}
	}
	return out
}

// Intersects reports whether s and o share at least one member.
func (s Set[T]) Intersects(o Set[T]) bool {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	for x := range small {
		if large.Has(x) {
			return true
		}
	}
	return false
}

// SubsetOf reports whether every member of s belongs to o.
func (s Set[T]) SubsetOf(o Set[T]) bool {
	if len(s) > len(o) {
		return false
	}
	for x := range s {
		if !o.Has(x) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o hold exactly the same members.
func (s Set[T]) Equal(o Set[T]) bool {
	return len(s) == len(o) && s.SubsetOf(o)
}

// Items returns the members in unspecified order.
func (s Set[T]) Items() []T {
	out := make([]T, 0, len(s))
	for x := range s {
		out = append(out, x)
	}
	return out
}

// Sorted returns the members ordered by their fmt representation.
// It gives stable output for rendering and serialization.
func (s Set[T]) Sorted() []T {
	items := s.Items()
	sortByString(items)
	return items
}

// String renders the set as {a, b, c} in Sorted order.
func (s Set[T]) String() string {
	return "{" + joinSorted(s.Items(), ", ") + "}"
}

func sortByString[T any](items []T) {
	keys := make(map[int]string, len(items))
	idx := make([]int, len(items))
	for i := range items {
		idx[i] = i
		keys[i] = fmt.Sprint(items[i])
	}
	sort.SliceStable(idx, func(i, j int) bool { return keys[idx[i]] < keys[idx[j]] })
	sorted := make([]T, len(items))
	for i, k := range idx {
		sorted[i] = items[k]
	}
	copy(items, sorted)
}

func joinSorted[T any](items []T, sep string) string {
	strs := make([]string, len(items))
	for i, it := range items {
		strs[i] = fmt.Sprint(it)
	}
	sort.Strings(strs)
	return strings.Join(strs, sep)
}
