package domain

var (
	caseCollision  = Rule{Kind: KindCaseCollision}
	reservedName   = Rule{Kind: KindReservedName}
	windowsSymbols = Rule{Kind: KindWindowsSymbols}
	posixSymbols   = Rule{Kind: KindPOSIXSymbols}
)

// catalog lists the rules of each filesystem in evaluation order.
var catalog = map[Filesystem][]Rule{
	NTFS: {
		caseCollision,
		reservedName,
		windowsSymbols,
		{Kind: KindFilenameLength, Limit: 255, Unit: UnitSymbols},
		{Kind: KindPathLength, Limit: 32767, Unit: UnitSymbols},
	},
	ExFAT: {
		caseCollision,
		reservedName,
		windowsSymbols,
		{Kind: KindFilenameLength, Limit: 255, Unit: UnitSymbols},
		{Kind: KindPathLength, Limit: 32760, Unit: UnitSymbols},
	},
	Ext4: {
		posixSymbols,
		{Kind: KindFilenameLength, Limit: 255, Unit: UnitBytes},
	},
	EncryptedExt4: {
		posixSymbols,
		{Kind: KindFilenameLength, Limit: 143, Unit: UnitBytes},
		{Kind: KindPathLength, Limit: 4095, Unit: UnitBytes},
	},
}

// Rules returns the rules of a filesystem in evaluation order, or nil for
// an unknown filesystem.
func Rules(fs Filesystem) []Rule {
	rules := catalog[fs]
	if rules == nil {
		return nil
	}
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Group is a rule paired with every requested filesystem it applies to.
type Group struct {
	Rule        Rule
	Filesystems []Filesystem
}

// Check evaluates the group's rule for an entry in the given directory.
func (g Group) Check(name, dir string, siblings Siblings) (Violation, bool) {
	return g.Rule.Check(Entry{
		Name:        name,
		Dir:         dir,
		Siblings:    siblings,
		Filesystems: g.Filesystems,
	})
}

// Resolve merges the rules of the requested filesystems so that a rule
// shared by several of them is evaluated once and names all of them.
// Groups appear in the order their rule was first seen; filesystems within
// a group keep the request order. Repeated filesystems are ignored.
func Resolve(fss []Filesystem) []Group {
	var groups []Group
	index := make(map[Rule]int)
	seen := make(map[Filesystem]bool, len(fss))
	for _, fs := range fss {
		if seen[fs] {
			continue
		}
		seen[fs] = true
		for _, r := range catalog[fs] {
			if i, ok := index[r]; ok {
				groups[i].Filesystems = append(groups[i].Filesystems, fs)
				continue
			}
			index[r] = len(groups)
			groups = append(groups, Group{Rule: r, Filesystems: []Filesystem{fs}})
		}
	}
	return groups
}
