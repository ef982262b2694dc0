package board

import "sort"

// NameSet is an unordered set of member names.
type NameSet map[string]struct{}

// NewNameSet returns a set containing names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s NameSet) Len() int {
	return len(s)
}

// Union returns a new set with the members of both s and o.
func (s NameSet) Union(o NameSet) NameSet {
	u := make(NameSet, len(s)+len(o))
	for n := range s {
		u.Add(n)
	}
	for n := range o {
		u.Add(n)
	}
	return u
}

// Intersect returns a new set with the members present in both s and o.
func (s NameSet) Intersect(o NameSet) NameSet {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	r := NameSet{}
	for n := range small {
		if large.Has(n) {
			r.Add(n)
		}
	}
	return r
}

// IntersectLen is |s ∩ o| without allocating the intersection.
func (s NameSet) IntersectLen(o NameSet) int {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	count := 0
	for n := range small {
		if large.Has(n) {
			count++
		}
	}
	return count
}

// Difference returns a new set with the members of s that are not in o.
func (s NameSet) Difference(o NameSet) NameSet {
	r := NameSet{}
	for n := range s {
		if !o.Has(n) {
			r.Add(n)
		}
	}
	return r
}

// Sorted returns the names in lexical order.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
