package initiator

import (
	"fmt"
	"os"

	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/logger"
)

type Initiator struct{}

func New() *Initiator {
	return &Initiator{}
}

// Execute creates the config file and the data directory layout. Running it
// again on an initialized setup is a no-op.
func (*Initiator) Execute() error {
	if cfg, err := globalconfig.LoadPersistentConfig(); err == nil {
		logger.Info("swiftup is already initialized (data dir: %s)", cfg.DataDir)
		return nil
	}

	dataDir, err := globalconfig.DefaultDataDir()
	if err != nil {
		return err
	}

	cfg := &globalconfig.PersistentConfig{DataDir: dataDir}
	if err := os.MkdirAll(cfg.ToolchainsDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	logger.Success("Initialized swiftup (toolchains will live in %s)", cfg.ToolchainsDir())
	logger.Info("Install your first toolchain with 'swiftup install latest'")
	return nil
}
