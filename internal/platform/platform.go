package platform

import (
	"fmt"
	"runtime"

	"github.com/swiftup/swiftup/internal/toolchain"
)

// Platform describes how the distribution host names artifacts for the
// running machine.
type Platform struct {
	Dir    string // URL path segment, e.g. "ubuntu2204"
	Suffix string // archive name segment, e.g. "ubuntu22.04"
}

var supported = map[string]Platform{
	"linux/amd64": {Dir: "ubuntu2204", Suffix: "ubuntu22.04"},
	"linux/arm64": {Dir: "ubuntu2204-aarch64", Suffix: "ubuntu22.04-aarch64"},
}

// Current identifies the running platform. Toolchain archives are only
// published as extractable tarballs for the platforms listed here.
func Current() (Platform, error) {
	key := runtime.GOOS + "/" + runtime.GOARCH
	p, ok := supported[key]
	if !ok {
		return Platform{}, fmt.Errorf("unsupported platform %s", key)
	}
	return p, nil
}

// ArtifactURL builds the download URL for a toolchain on this platform.
// Layout on the distribution host: <base>/<category>/<platform>/<tag>/<tag>-<platform>.tar.gz
func ArtifactURL(base string, v toolchain.Version, p Platform) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s-%s.tar.gz", base, category(v), p.Dir, v.Tag(), v.Tag(), p.Suffix)
}

// ArchiveName is the artifact's file name, used for temp downloads.
func ArchiveName(v toolchain.Version, p Platform) string {
	return fmt.Sprintf("%s-%s.tar.gz", v.Tag(), p.Suffix)
}

func category(v toolchain.Version) string {
	switch {
	case v.IsStable():
		return fmt.Sprintf("swift-%d.%d.%d-release", v.Major, v.Minor, v.Patch)
	case v.Branch.Main:
		return "development"
	default:
		return fmt.Sprintf("swift-%d.%d-branch", v.Branch.Major, v.Branch.Minor)
	}
}
