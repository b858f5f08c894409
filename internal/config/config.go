package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	MenuName      string   `yaml:"menu_name"`                // Label of the root menu
	Roots         []string `yaml:"roots,omitempty"`          // Directories scanned when none are given
	Destination   string   `yaml:"destination,omitempty"`    // Menu file used with Roots
	LaunchersFile string   `yaml:"launchers_file,omitempty"` // Path to launchers.yaml (optional)
	Backup        bool     `yaml:"backup"`                   // Back up the destination before overwriting
	BackupDir     string   `yaml:"backup_dir,omitempty"`     // Defaults to the destination's directory
	BackupKeep    int      `yaml:"backup_keep"`              // Backups kept per destination, 0 keeps all
	Debug         bool     `yaml:"debug"`
}

const (
	appName        = "deskmenu"
	configFileName = "config.yaml"

	// DefaultMenuName is the root menu label when none is configured
	DefaultMenuName = "Programs"

	// DefaultBackupKeep is the number of destination backups kept
	DefaultBackupKeep = 5
)

// ErrInvalid is returned for configuration values that cannot be used
var ErrInvalid = errors.New("invalid configuration")

// Default returns the default configuration
func Default() *Config {
	return &Config{
		MenuName:   DefaultMenuName,
		BackupKeep: DefaultBackupKeep,
	}
}

// ConfigDir returns the directory containing deskmenu config files
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", appName)
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// DefaultRoot returns the per-user applications directory scanned when
// no root is given
func DefaultRoot() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", "applications")
}

// DefaultDestination returns the menu file written when no destination is given
func DefaultDestination() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", "applications-menu")
}

// Load loads the configuration from the default location
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from path. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.expandPaths()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that YAML decoding cannot
func (c *Config) Validate() error {
	if strings.TrimSpace(c.MenuName) == "" {
		return fmt.Errorf("%w: menu_name must not be empty", ErrInvalid)
	}
	if len(c.Roots) > 0 && c.Destination == "" {
		return fmt.Errorf("%w: roots require a destination", ErrInvalid)
	}
	if c.BackupKeep < 0 {
		return fmt.Errorf("%w: backup_keep must not be negative", ErrInvalid)
	}
	for _, root := range c.Roots {
		if strings.TrimSpace(root) == "" {
			return fmt.Errorf("%w: empty entry in roots", ErrInvalid)
		}
	}
	return nil
}

// Save saves the configuration to path
func (c *Config) Save(path string) error {
	// Create config directory
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetBackupDir returns where backups of destination are stored
func (c *Config) GetBackupDir(destination string) string {
	if c.BackupDir != "" {
		return c.BackupDir
	}
	return filepath.Dir(destination)
}

func (c *Config) expandPaths() {
	for i, root := range c.Roots {
		c.Roots[i] = ExpandPath(root)
	}
	c.Destination = ExpandPath(c.Destination)
	c.LaunchersFile = ExpandPath(c.LaunchersFile)
	c.BackupDir = ExpandPath(c.BackupDir)
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
