package toolchain

import (
	"fmt"
	"regexp"
)

// SelectorKind describes what a CLI version argument asks for.
type SelectorKind int

const (
	SelectLatest       SelectorKind = iota // newest stable release
	SelectStable                           // exact a.b.c
	SelectLatestPatch                      // newest patch of a.b
	SelectSnapshot                         // newest snapshot of a branch
	SelectSnapshotDate                     // exact dated snapshot
)

// Selector is a parsed version argument ("latest", "5.7", "5.7.0",
// "main-snapshot", "5.7-snapshot-2022-09-12", ...).
type Selector struct {
	Kind                SelectorKind
	Major, Minor, Patch uint
	Branch              Branch
	Date                string
}

var (
	exactStableRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)
	minorOnlyRe   = regexp.MustCompile(`^(\d+)\.(\d+)$`)
	branchSnapRe  = regexp.MustCompile(`^(\d+)\.(\d+)-snapshot$`)
)

// ParseSelector parses a user-supplied version argument. Unlike tag parsing,
// an unrecognized selector is a user error and is reported as one.
func ParseSelector(arg string) (Selector, error) {
	switch {
	case arg == "latest":
		return Selector{Kind: SelectLatest}, nil
	case arg == "main-snapshot":
		return Selector{Kind: SelectSnapshot, Branch: MainBranch()}, nil
	}
	if m := exactStableRe.FindStringSubmatch(arg); m != nil {
		return Selector{
			Kind:  SelectStable,
			Major: mustUint(m[1]), Minor: mustUint(m[2]), Patch: mustUint(m[3]),
		}, nil
	}
	if m := minorOnlyRe.FindStringSubmatch(arg); m != nil {
		return Selector{Kind: SelectLatestPatch, Major: mustUint(m[1]), Minor: mustUint(m[2])}, nil
	}
	if m := branchSnapRe.FindStringSubmatch(arg); m != nil {
		return Selector{Kind: SelectSnapshot, Branch: ReleaseBranch(mustUint(m[1]), mustUint(m[2]))}, nil
	}
	if v, ok := ParseSnapshotTag(arg); ok {
		return Selector{Kind: SelectSnapshotDate, Branch: v.Branch, Date: v.Date}, nil
	}
	return Selector{}, fmt.Errorf("unrecognized version %q (expected latest, X.Y, X.Y.Z, main-snapshot[-date] or X.Y-snapshot[-date])", arg)
}

// ParseName parses the user-facing name form produced by Version.String
// ("5.7.0", "main-snapshot-2022-09-12").
func ParseName(name string) (Version, bool) {
	if m := exactStableRe.FindStringSubmatch(name); m != nil {
		return NewStable(mustUint(m[1]), mustUint(m[2]), mustUint(m[3])), true
	}
	return ParseSnapshotTag(name)
}

// Matches reports whether a resolved version satisfies the selector.
func (s Selector) Matches(v Version) bool {
	switch s.Kind {
	case SelectLatest:
		return v.IsStable()
	case SelectStable:
		return v == NewStable(s.Major, s.Minor, s.Patch)
	case SelectLatestPatch:
		return v.IsStable() && v.Major == s.Major && v.Minor == s.Minor
	case SelectSnapshot:
		return v.IsSnapshot() && v.Branch == s.Branch
	case SelectSnapshotDate:
		return v == NewSnapshot(s.Branch, s.Date)
	default:
		return false
	}
}

// Snapshot reports whether the selector targets the snapshot variant.
func (s Selector) Snapshot() bool {
	return s.Kind == SelectSnapshot || s.Kind == SelectSnapshotDate
}
