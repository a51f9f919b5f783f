package uninstall

import (
	"fmt"
	"os"

	"github.com/swiftup/swiftup/internal/core"
	"github.com/swiftup/swiftup/internal/errs"
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/logger"
	"github.com/swiftup/swiftup/internal/prompter"
)

type Uninstaller struct {
	*core.Base
	Prompter prompter.Prompter
}

func New(cfg *globalconfig.PersistentConfig, p prompter.Prompter) *Uninstaller {
	if p == nil {
		p = prompter.New(os.Stdin, os.Stdout)
	}
	return &Uninstaller{
		Base:     core.NewBase(cfg, nil, nil),
		Prompter: p,
	}
}

// Execute removes an installed toolchain from disk and from the state file.
// The in-use toolchain is protected; switch away first.
func (u *Uninstaller) Execute(name string, force bool) error {
	if !u.Config.Has(name) {
		return fmt.Errorf("%s", errs.Msg(errs.NotInstalled, name))
	}

	if u.Config.InUse == name {
		return fmt.Errorf("%s", errs.Msg(errs.UninstallInUse, name))
	}

	if !force {
		ok, err := u.Prompter.Confirm(fmt.Sprintf("Remove Swift %s?", name))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			logger.Info("Aborted")
			return nil
		}
	}

	if err := os.RemoveAll(u.Config.ToolchainPath(name)); err != nil {
		return fmt.Errorf("failed to remove toolchain %s: %w", name, err)
	}

	u.Config.Remove(name)
	if err := u.Config.Save(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	logger.Success("Removed Swift %s", name)
	return nil
}
