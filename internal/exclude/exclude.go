// Package exclude matches walk entries against doublestar glob patterns.
package exclude

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher excludes entries whose root-relative path matches any pattern.
// A pattern without a slash matches the entry's base name at any depth,
// the way ignore files usually behave.
type Matcher struct {
	patterns []string
}

// New validates the patterns and returns a Matcher.
func New(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range patterns {
		p = filepath.ToSlash(strings.TrimSpace(p))
		p = strings.TrimPrefix(p, "./")
		p = strings.TrimSuffix(p, "/")
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
		if !strings.Contains(p, "/") {
			p = "**/" + p
		}
		m.patterns = append(m.patterns, p)
	}
	return m, nil
}

// Excluded reports whether rel matches one of the patterns.
func (m *Matcher) Excluded(rel string, _ bool) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range m.patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// Len returns the number of active patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}
