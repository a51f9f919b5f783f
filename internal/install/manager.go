package install

import (
	"context"
	"fmt"

	"github.com/swiftup/swiftup/internal/core"
	"github.com/swiftup/swiftup/internal/download"
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/index"
	"github.com/swiftup/swiftup/internal/logger"
	"github.com/swiftup/swiftup/internal/toolchain"
)

type Installer struct {
	*core.Base
}

func New(cfg *globalconfig.PersistentConfig, idx *index.Client, dl *download.Downloader) *Installer {
	return &Installer{
		Base: core.NewBase(cfg, idx, dl),
	}
}

// Execute resolves a version selector against the remote index, installs the
// matching toolchain and optionally switches to it. Installing the first
// toolchain always activates it.
func (i *Installer) Execute(ctx context.Context, arg string, use bool) error {
	sel, err := toolchain.ParseSelector(arg)
	if err != nil {
		return err
	}

	v, err := i.Index.Resolve(ctx, sel)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", arg, err)
	}
	name := v.String()

	if i.Config.Has(name) {
		logger.Info("Swift %s is already installed", name)
		if use {
			return i.Activate(name)
		}
		return nil
	}

	logger.Info("Installing Swift %s...", name)
	if err := i.Acquire(ctx, v, core.ProgressRenderer(logger.Out())); err != nil {
		return fmt.Errorf("failed to install Swift %s: %w", name, err)
	}
	logger.Success("Installed Swift %s", name)

	if use || i.Config.InUse == "" {
		if err := i.Activate(name); err != nil {
			return err
		}
		logger.Success("Swift %s is now in use", name)
	}
	return nil
}
