package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowerCase applies full Unicode lower-case mapping.
// A Caser carries state, so one is built per call.
func lowerCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// upperCase applies full Unicode upper-case mapping, so "ß" becomes "SS".
func upperCase(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Listing is the complete set of names in one directory, indexed by their
// lower-cased form.
type Listing struct {
	names  []string
	folded []string
	counts map[string]int
}

// NewListing indexes the names of one directory.
func NewListing(names []string) *Listing {
	l := &Listing{
		names:  names,
		folded: make([]string, len(names)),
		counts: make(map[string]int, len(names)),
	}
	for i, n := range names {
		key := lowerCase(n)
		l.folded[i] = key
		l.counts[key]++
	}
	return l
}

// Len returns the number of names in the listing.
func (l *Listing) Len() int { return len(l.names) }

// Name returns the i-th name.
func (l *Listing) Name(i int) string { return l.names[i] }

// Siblings returns the listing as seen from the i-th name, which is excluded.
func (l *Listing) Siblings(i int) Siblings {
	return Siblings{listing: l, self: i}
}

// Siblings is the set of other names in an entry's directory.
// The zero value is an empty set.
type Siblings struct {
	listing *Listing
	self    int
}

// NewSiblings builds a sibling set from explicit names.
func NewSiblings(names ...string) Siblings {
	return Siblings{listing: NewListing(names), self: -1}
}

// Len returns the number of siblings.
func (s Siblings) Len() int {
	if s.listing == nil {
		return 0
	}
	if s.self >= 0 {
		return s.listing.Len() - 1
	}
	return s.listing.Len()
}

// Names returns the sibling names in listing order.
func (s Siblings) Names() []string {
	if s.listing == nil {
		return nil
	}
	out := make([]string, 0, s.Len())
	for i, n := range s.listing.names {
		if i != s.self {
			out = append(out, n)
		}
	}
	return out
}

// HasCaseInsensitiveMatch reports whether any sibling lower-cases to the
// same string as name.
func (s Siblings) HasCaseInsensitiveMatch(name string) bool {
	if s.listing == nil {
		return false
	}
	key := lowerCase(name)
	n := s.listing.counts[key]
	if s.self >= 0 && s.listing.folded[s.self] == key {
		n--
	}
	return n > 0
}
