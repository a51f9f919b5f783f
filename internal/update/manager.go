package update

import (
	"context"
	"errors"
	"fmt"

	"github.com/swiftup/swiftup/internal/core"
	"github.com/swiftup/swiftup/internal/download"
	"github.com/swiftup/swiftup/internal/errs"
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/index"
	"github.com/swiftup/swiftup/internal/logger"
	"github.com/swiftup/swiftup/internal/toolchain"
)

type Updater struct {
	*core.Base
}

func New(cfg *globalconfig.PersistentConfig, idx *index.Client, dl *download.Downloader) *Updater {
	return &Updater{
		Base: core.NewBase(cfg, idx, dl),
	}
}

// Execute brings one installed toolchain (the in-use one by default) up to
// the newest build on its track: the latest patch for a stable release, the
// latest date for a snapshot branch. The older build stays installed.
func (u *Updater) Execute(ctx context.Context, name string) error {
	if name == "" {
		name = u.Config.InUse
	}
	if name == "" {
		return fmt.Errorf("no toolchain in use; run 'swiftup update <version>'")
	}
	if !u.Config.Has(name) {
		return fmt.Errorf("%s", errs.Msg(errs.NotInstalled, name))
	}

	current, ok := toolchain.ParseName(name)
	if !ok {
		return fmt.Errorf("unrecognized installed toolchain name %q", name)
	}

	newest, err := u.newestOnTrack(ctx, current)
	if err != nil {
		if errors.Is(err, index.ErrNoMatch) {
			logger.Info("No published builds found for the %s track", name)
			return nil
		}
		return err
	}

	if !current.Less(newest) {
		logger.Success("Swift %s is up to date", name)
		return nil
	}

	logger.Info("Updating Swift %s -> %s...", name, newest)
	if err := u.Acquire(ctx, newest, core.ProgressRenderer(logger.Out())); err != nil {
		return fmt.Errorf("failed to install Swift %s: %w", newest, err)
	}
	logger.Success("Installed Swift %s", newest)

	if u.Config.InUse == name {
		if err := u.Activate(newest.String()); err != nil {
			return err
		}
		logger.Success("Swift %s is now in use", newest)
	}
	return nil
}

func (u *Updater) newestOnTrack(ctx context.Context, v toolchain.Version) (toolchain.Version, error) {
	if v.IsStable() {
		return u.Index.LatestPatch(ctx, v.Major, v.Minor)
	}
	return u.Index.LatestSnapshot(ctx, v.Branch)
}
