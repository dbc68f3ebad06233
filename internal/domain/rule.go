package domain

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Kind tags the variant of a naming rule.
type Kind string

const (
	// KindCaseCollision flags names that differ from a sibling only by case.
	KindCaseCollision Kind = "case-collision"
	// KindReservedName flags Windows device names.
	KindReservedName Kind = "reserved-name"
	// KindWindowsSymbols flags characters Windows filesystems prohibit.
	KindWindowsSymbols Kind = "windows-symbols"
	// KindPOSIXSymbols flags characters POSIX filesystems prohibit.
	KindPOSIXSymbols Kind = "posix-symbols"
	// KindFilenameLength flags names longer than the filesystem allows.
	KindFilenameLength Kind = "filename-length"
	// KindPathLength flags full paths longer than the filesystem allows.
	KindPathLength Kind = "path-length"
)

// Unit is the measure a length limit is expressed in.
type Unit string

const (
	// UnitSymbols counts Unicode code points.
	UnitSymbols Unit = "symbols"
	// UnitBytes counts bytes of the UTF-8 encoding.
	UnitBytes Unit = "bytes"
)

// Measure returns the length of s in this unit.
func (u Unit) Measure(s string) int {
	if u == UnitBytes {
		return len(s)
	}
	return utf8.RuneCountInString(s)
}

// Rule is one naming constraint. Limit and Unit are only set for the
// length kinds. Rules are compared by value: two filesystems share a check
// exactly when they carry the same Rule.
type Rule struct {
	Kind  Kind
	Limit int
	Unit  Unit
}

const windowsProhibited = `/\:*?"<>|`

const posixProhibited = "/"

var reservedNames = func() map[string]bool {
	m := map[string]bool{"CON": true, "PRN": true, "AUX": true, "CLOCK$": true, "NUL": true}
	for i := 1; i <= 9; i++ {
		m[fmt.Sprintf("COM%d", i)] = true
		m[fmt.Sprintf("LPT%d", i)] = true
	}
	return m
}()

// IsReservedName reports whether name is a Windows device name.
func IsReservedName(name string) bool {
	return reservedNames[upperCase(name)]
}

// Entry is what every check sees of one directory entry.
type Entry struct {
	Name        string
	Dir         string
	Siblings    Siblings
	Filesystems []Filesystem
}

// Path returns the entry's full path as derived from the walk root.
func (e Entry) Path() string {
	switch {
	case e.Dir == "":
		return e.Name
	case strings.HasSuffix(e.Dir, string(os.PathSeparator)):
		return e.Dir + e.Name
	default:
		return e.Dir + string(os.PathSeparator) + e.Name
	}
}

// Check applies the rule to the entry and returns the violation, if any.
func (r Rule) Check(e Entry) (Violation, bool) {
	var msg string
	switch r.Kind {
	case KindCaseCollision:
		if !e.Siblings.HasCaseInsensitiveMatch(e.Name) {
			return Violation{}, false
		}
		msg = fmt.Sprintf("%s has case-insensitive duplicate filenames in the same directory, which isn't allowed on %s",
			e.Path(), JoinFilesystems(e.Filesystems))
	case KindReservedName:
		if !IsReservedName(e.Name) {
			return Violation{}, false
		}
		msg = fmt.Sprintf("%s is a reserved name on %s", e.Path(), JoinFilesystems(e.Filesystems))
	case KindWindowsSymbols, KindPOSIXSymbols:
		set := posixProhibited
		if r.Kind == KindWindowsSymbols {
			set = windowsProhibited
		}
		found := offendingChars(e.Name, set)
		if found == "" {
			return Violation{}, false
		}
		msg = fmt.Sprintf("%s contains \"%s\", which isn't allowed on %s", e.Path(), found, JoinFilesystems(e.Filesystems))
	case KindFilenameLength:
		if r.Unit.Measure(e.Name) <= r.Limit {
			return Violation{}, false
		}
		msg = fmt.Sprintf("%s filename is more than %d %s, which isn't allowed on %s",
			e.Path(), r.Limit, r.Unit, JoinFilesystems(e.Filesystems))
	case KindPathLength:
		if r.Unit.Measure(e.Path()) <= r.Limit {
			return Violation{}, false
		}
		msg = fmt.Sprintf("%s path length is than %d %s, which isn't allowed on %s",
			e.Path(), r.Limit, r.Unit, JoinFilesystems(e.Filesystems))
	default:
		return Violation{}, false
	}
	return Violation{
		Kind:        r.Kind,
		Path:        e.Path(),
		Filesystems: e.Filesystems,
		Message:     msg,
	}, true
}

// offendingChars returns the distinct characters of name found in set,
// in order of first appearance.
func offendingChars(name, set string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(set, r) && !strings.ContainsRune(b.String(), r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Describe renders a one-line description of the rule.
func (r Rule) Describe() string {
	switch r.Kind {
	case KindCaseCollision:
		return "names must differ from siblings ignoring case"
	case KindReservedName:
		return "device names (CON, PRN, AUX, CLOCK$, NUL, COM1-9, LPT1-9) are reserved"
	case KindWindowsSymbols:
		return "names must not contain " + strings.Join(strings.Split(windowsProhibited, ""), " ")
	case KindPOSIXSymbols:
		return "names must not contain " + posixProhibited
	case KindFilenameLength:
		return fmt.Sprintf("names are at most %d %s", r.Limit, r.Unit)
	case KindPathLength:
		return fmt.Sprintf("full paths are at most %d %s", r.Limit, r.Unit)
	}
	return string(r.Kind)
}
