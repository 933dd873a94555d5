package capability

import (
	"sort"
	"strings"
)

// Set is an unordered, duplicate-free collection of capabilities.
type Set map[Cap]struct{}

// NewSet builds a Set from the given capabilities. Duplicates collapse.
func NewSet(caps ...Cap) Set {
	set := make(Set, len(caps))
	for _, c := range caps {
		set.Add(c)
	}
	return set
}

func (s Set) Add(c Cap) {
	s[c] = struct{}{}
}

func (s Set) Remove(c Cap) {
	delete(s, c)
}

func (s Set) Has(c Cap) bool {
	_, ok := s[c]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Slice returns the members in ascending index order. The ordering is for
// deterministic printing only; Set semantics do not depend on it.
func (s Set) Slice() []Cap {
	caps := make([]Cap, 0, len(s))
	for c := range s {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

func (s Set) String() string {
	names := []string{}
	for _, c := range s.Slice() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}
