package platform

import (
	"testing"

	"github.com/swiftup/swiftup/internal/toolchain"
	"github.com/stretchr/testify/assert"
)

func TestArtifactURL(t *testing.T) {
	p := Platform{Dir: "ubuntu2204", Suffix: "ubuntu22.04"}

	url := ArtifactURL("https://download.example.org", toolchain.NewStable(5, 7, 0), p)
	assert.Equal(t,
		"https://download.example.org/swift-5.7.0-release/ubuntu2204/swift-5.7.0-RELEASE/swift-5.7.0-RELEASE-ubuntu22.04.tar.gz",
		url)

	url = ArtifactURL("https://download.example.org", toolchain.NewSnapshot(toolchain.MainBranch(), "2022-09-12"), p)
	assert.Equal(t,
		"https://download.example.org/development/ubuntu2204/main-snapshot-2022-09-12/main-snapshot-2022-09-12-ubuntu22.04.tar.gz",
		url)

	url = ArtifactURL("https://download.example.org", toolchain.NewSnapshot(toolchain.ReleaseBranch(5, 7), "2022-09-12"), p)
	assert.Contains(t, url, "/swift-5.7-branch/")
}

func TestArchiveName(t *testing.T) {
	p := Platform{Dir: "ubuntu2204", Suffix: "ubuntu22.04"}
	assert.Equal(t, "swift-5.6.3-RELEASE-ubuntu22.04.tar.gz", ArchiveName(toolchain.NewStable(5, 6, 3), p))
}
