package globalconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/swiftup/swiftup/internal/models"
	"github.com/swiftup/swiftup/internal/utils"
	"github.com/swiftup/swiftup/internal/utils/pathutils"
)

// PersistentConfig is the on-disk state: where toolchains live, which ones
// are installed and which one is active.
type PersistentConfig struct {
	DataDir      string `yaml:"data_dir"`
	models.State `yaml:",inline"`
}

const (
	configDir  = ".config/swiftup"
	configFile = "config.yml"
	defaultDir = ".local/share/swiftup"
)

func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, defaultDir), nil
}

func LoadPersistentConfig() (*PersistentConfig, error) {
	fullConfigDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(fullConfigDir, configFile)

	exists, err := utils.FileExists(configPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("no configuration found. Please run 'swiftup init' first")
	}

	var cfg PersistentConfig
	if err := utils.FileReader(configPath, utils.FileTypeYAML, &cfg); err != nil {
		return nil, err
	}

	absPath, err := pathutils.ToAbsolutePath(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data dir path: %w", err)
	}
	cfg.DataDir = absPath

	return &cfg, nil
}

func (c *PersistentConfig) Save() error {
	fullConfigDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	saved := *c
	homePath, err := pathutils.ToHomePathFormat(c.DataDir)
	if err != nil {
		return fmt.Errorf("failed to convert to home path format: %w", err)
	}
	saved.DataDir = homePath

	return utils.CreateFile(filepath.Join(fullConfigDir, configFile), &saved, utils.FileTypeYAML, 0o644)
}

// ToolchainsDir is where extracted toolchains are installed.
func (c *PersistentConfig) ToolchainsDir() string {
	return filepath.Join(c.DataDir, "toolchains")
}

// ToolchainPath returns the install directory for a toolchain name.
func (c *PersistentConfig) ToolchainPath(name string) string {
	return filepath.Join(c.ToolchainsDir(), name)
}

// ActiveLink is the symlink pointing at the in-use toolchain.
func (c *PersistentConfig) ActiveLink() string {
	return filepath.Join(c.DataDir, "active")
}
