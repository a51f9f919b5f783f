package use

import (
	"errors"
	"fmt"

	"github.com/swiftup/swiftup/internal/core"
	"github.com/swiftup/swiftup/internal/errs"
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/logger"
)

type Switcher struct {
	*core.Base
}

func New(cfg *globalconfig.PersistentConfig) *Switcher {
	return &Switcher{
		Base: core.NewBase(cfg, nil, nil),
	}
}

// Execute repoints the active symlink at an installed toolchain.
func (s *Switcher) Execute(name string) error {
	if s.Config.InUse == name {
		logger.Info("Swift %s is already in use", name)
		return nil
	}

	if err := s.Activate(name); err != nil {
		if errors.Is(err, core.ErrNotInstalled) {
			return fmt.Errorf("%s", errs.Msg(errs.NotInstalled, name))
		}
		return err
	}

	logger.Success("Swift %s is now in use", name)
	return nil
}
