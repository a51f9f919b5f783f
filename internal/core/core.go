package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/swiftup/swiftup/internal/download"
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/index"
	"github.com/swiftup/swiftup/internal/logger"
	"github.com/swiftup/swiftup/internal/platform"
	"github.com/swiftup/swiftup/internal/toolchain"
	"github.com/swiftup/swiftup/internal/utils"
)

var ErrNotInstalled = errors.New("toolchain not installed")

// Base carries the collaborators every toolchain manager needs: the
// persisted installation state, the tag index and the artifact downloader.
type Base struct {
	Config     *globalconfig.PersistentConfig
	Index      *index.Client
	Downloader *download.Downloader
}

func NewBase(cfg *globalconfig.PersistentConfig, idx *index.Client, dl *download.Downloader) *Base {
	if idx == nil {
		idx = index.New(nil, nil)
	}
	if dl == nil {
		dl = download.New(nil, nil)
	}
	return &Base{
		Config:     cfg,
		Index:      idx,
		Downloader: dl,
	}
}

// Acquire downloads and installs one resolved toolchain: artifact into a
// temp file, extraction into a staging directory, atomic rename into place,
// then state registration. The temp artifact is removed on every exit path;
// a failed download leaves no partial install behind.
func (b *Base) Acquire(ctx context.Context, v toolchain.Version, onProgress download.ProgressFunc) (err error) {
	plat, err := platform.Current()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(b.Config.ToolchainsDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create toolchains directory: %w", err)
	}

	tmp, err := os.CreateTemp(b.Config.DataDir, platform.ArchiveName(v, plat)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file %s: %w", tmpPath, err)
	}
	defer func() {
		if rerr := os.Remove(tmpPath); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			logger.Debug("failed to remove temp artifact %s: %v", tmpPath, rerr)
		}
	}()

	url := platform.ArtifactURL(b.Index.Config.DownloadBaseURL, v, plat)
	logger.Debug("downloading %s", url)
	if err := b.Downloader.Download(ctx, v, url, tmpPath, onProgress); err != nil {
		return err
	}

	staging := b.Config.ToolchainPath(v.String()) + ".partial"
	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("failed to clear staging directory: %w", err)
	}
	if err := utils.ExtractTarGz(tmpPath, staging); err != nil {
		_ = os.RemoveAll(staging)
		return err
	}

	final := b.Config.ToolchainPath(v.String())
	if err := os.RemoveAll(final); err != nil {
		return fmt.Errorf("failed to clear %s: %w", final, err)
	}
	if err := os.Rename(staging, final); err != nil {
		return fmt.Errorf("failed to move toolchain into place: %w", err)
	}

	b.Config.Add(v.String())
	if err := b.Config.Save(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Activate points the active symlink at an installed toolchain and records
// it as in use.
func (b *Base) Activate(name string) error {
	if !b.Config.Has(name) {
		return fmt.Errorf("%w: %s", ErrNotInstalled, name)
	}
	onDisk, err := utils.DirExists(b.Config.ToolchainPath(name))
	if err != nil {
		return err
	}
	if !onDisk {
		// registered but missing from disk, state went stale
		return fmt.Errorf("%w: %s (missing from %s)", ErrNotInstalled, name, b.Config.ToolchainsDir())
	}

	link := b.Config.ActiveLink()
	if err := os.Remove(link); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove active link: %w", err)
	}
	if err := os.Symlink(b.Config.ToolchainPath(name), link); err != nil {
		return fmt.Errorf("failed to create active link: %w", err)
	}

	b.Config.InUse = name
	if err := b.Config.Save(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Deactivate drops the active symlink and clears the in-use pointer.
func (b *Base) Deactivate() error {
	if err := os.Remove(b.Config.ActiveLink()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove active link: %w", err)
	}
	b.Config.InUse = ""
	if err := b.Config.Save(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// ProgressRenderer writes an inline one-line progress display, the final
// state ending with a newline once the transfer completes.
func ProgressRenderer(w io.Writer) download.ProgressFunc {
	return func(p download.Progress) {
		switch {
		case p.Total > 0 && p.Received == p.Total:
			fmt.Fprintf(w, "\r⬇️  %s / %s (100%%)\n", utils.HumanSize(p.Received), utils.HumanSize(p.Total))
		case p.Total > 0:
			fmt.Fprintf(w, "\r⬇️  %s / %s (%d%%)", utils.HumanSize(p.Received), utils.HumanSize(p.Total),
				p.Received*100/p.Total)
		default:
			fmt.Fprintf(w, "\r⬇️  %s", utils.HumanSize(p.Received))
		}
	}
}
