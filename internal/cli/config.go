package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds file-level defaults for the commands.
type Config struct {
	// Part is the default puzzle part, "1" or "2".
	Part string `toml:"part"`
	// Strict rejects floor characters other than '.'.
	Strict bool `toml:"strict"`
	// LogLevel is a charmbracelet/log level name such as "info" or "debug".
	LogLevel string      `toml:"log_level"`
	Graph    GraphConfig `toml:"graph"`
}

// GraphConfig holds defaults for the graph command.
type GraphConfig struct {
	// Format is "dot" or "svg".
	Format string `toml:"format"`
	// OnlyFree drops edges that cross a locked door.
	OnlyFree bool `toml:"only_free"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Part:     "1",
		LogLevel: "info",
		Graph:    GraphConfig{Format: formatDOT},
	}
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return LogInfo, fmt.Errorf("config: log_level: %w", err)
	}
	return level, nil
}

// LoadConfig decodes the TOML file at path over DefaultConfig.
// A missing file is an error only when explicit is true; an empty path
// yields the defaults.
func LoadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// defaultConfigPath returns the config file location using the XDG standard
// (~/.config/keyvault/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
