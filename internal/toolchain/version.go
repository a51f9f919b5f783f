package toolchain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind discriminates the two toolchain variants. Snapshots sort below
// stable releases so the discriminant order is part of the total order.
type Kind int

const (
	KindSnapshot Kind = iota
	KindStable
)

// Branch identifies the line a snapshot was cut from: the main development
// branch or a numbered release branch.
type Branch struct {
	Main         bool
	Major, Minor uint
}

func MainBranch() Branch {
	return Branch{Main: true}
}

func ReleaseBranch(major, minor uint) Branch {
	return Branch{Major: major, Minor: minor}
}

func (b Branch) String() string {
	if b.Main {
		return "main"
	}
	return fmt.Sprintf("%d.%d", b.Major, b.Minor)
}

// Version is a closed two-variant value: a stable release (Major/Minor/Patch)
// or a dated snapshot (Branch/Date). Kind selects the variant; the unused
// fields stay zero so structural equality (==) works.
type Version struct {
	Kind                Kind
	Major, Minor, Patch uint
	Branch              Branch
	Date                string // YYYY-MM-DD
}

func NewStable(major, minor, patch uint) Version {
	return Version{Kind: KindStable, Major: major, Minor: minor, Patch: patch}
}

func NewSnapshot(branch Branch, date string) Version {
	return Version{Kind: KindSnapshot, Branch: branch, Date: date}
}

func (v Version) IsStable() bool   { return v.Kind == KindStable }
func (v Version) IsSnapshot() bool { return v.Kind == KindSnapshot }

// String renders the user-facing name: "5.7.0", "main-snapshot-2022-09-12",
// "5.7-snapshot-2022-09-12". Snapshot names round-trip through ParseSnapshotTag.
func (v Version) String() string {
	switch v.Kind {
	case KindStable:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	case KindSnapshot:
		return fmt.Sprintf("%s-snapshot-%s", v.Branch, v.Date)
	default:
		return "invalid"
	}
}

// Tag renders the remote-index tag name for this version.
func (v Version) Tag() string {
	if v.Kind == KindStable {
		return fmt.Sprintf("swift-%d.%d.%d-RELEASE", v.Major, v.Minor, v.Patch)
	}
	return v.String()
}

var (
	stableTagRe   = regexp.MustCompile(`^swift-(\d+)\.(\d+)\.(\d+)-RELEASE$`)
	mainSnapRe    = regexp.MustCompile(`^main-snapshot-(\d{4}-\d{2}-\d{2})$`)
	releaseSnapRe = regexp.MustCompile(`^(\d+)\.(\d+)-snapshot-(\d{4}-\d{2}-\d{2})$`)
)

// ParseStableTag recognizes "swift-<a>.<b>.<c>-RELEASE". Anything else,
// including RC and pre-release tags, is simply not a stable release.
func ParseStableTag(name string) (Version, bool) {
	m := stableTagRe.FindStringSubmatch(name)
	if m == nil {
		return Version{}, false
	}
	return NewStable(mustUint(m[1]), mustUint(m[2]), mustUint(m[3])), true
}

// ParseSnapshotTag recognizes "main-snapshot-<date>" and
// "<a>.<b>-snapshot-<date>".
func ParseSnapshotTag(name string) (Version, bool) {
	if m := mainSnapRe.FindStringSubmatch(name); m != nil {
		return NewSnapshot(MainBranch(), m[1]), true
	}
	if m := releaseSnapRe.FindStringSubmatch(name); m != nil {
		return NewSnapshot(ReleaseBranch(mustUint(m[1]), mustUint(m[2])), m[3]), true
	}
	return Version{}, false
}

// ParseTag converts one raw index tag into a Version. The index carries
// plenty of unrelated tags; those yield false, not an error.
func ParseTag(name string) (Version, bool) {
	if v, ok := ParseStableTag(name); ok {
		return v, true
	}
	return ParseSnapshotTag(name)
}

// Compare defines the total order over versions: snapshots below stable
// releases, stable releases lexicographic by (major, minor, patch),
// snapshots by branch then date. ISO dates compare correctly as strings.
func Compare(a, b Version) int {
	if a.Kind != b.Kind {
		return cmpInt(int(a.Kind), int(b.Kind))
	}
	switch a.Kind {
	case KindStable:
		if c := cmpUint(a.Major, b.Major); c != 0 {
			return c
		}
		if c := cmpUint(a.Minor, b.Minor); c != 0 {
			return c
		}
		return cmpUint(a.Patch, b.Patch)
	case KindSnapshot:
		if c := compareBranch(a.Branch, b.Branch); c != 0 {
			return c
		}
		return strings.Compare(a.Date, b.Date)
	default:
		return 0
	}
}

func (v Version) Less(o Version) bool { return Compare(v, o) < 0 }

// compareBranch orders release branches by (major, minor) with main greatest.
// Cross-branch order is arbitrary but must stay consistent for sorting.
func compareBranch(a, b Branch) int {
	if a.Main != b.Main {
		if a.Main {
			return 1
		}
		return -1
	}
	if c := cmpUint(a.Major, b.Major); c != 0 {
		return c
	}
	return cmpUint(a.Minor, b.Minor)
}

func cmpUint(a, b uint) int {
	return cmpInt(int(a), int(b))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// mustUint is only called on regexp-matched digit groups.
func mustUint(s string) uint {
	n, _ := strconv.ParseUint(s, 10, 64)
	return uint(n)
}
