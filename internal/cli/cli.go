// Package cli implements the keyvault command-line interface.
//
// # Commands
//
//   - solve: print the fewest steps that collect every key (part 1 or 2)
//   - graph: print the key graph as Graphviz DOT, or render it to SVG
//
// Both commands read the map from a file argument or, without one, from
// standard input.
//
// # Configuration
//
// An optional TOML file (--config, default $XDG_CONFIG_HOME/keyvault/config.toml)
// supplies defaults; flags given on the command line win.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging through
// charmbracelet/log on stderr.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "keyvault"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"  // semantic version
	commit  = "none" // git commit SHA
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
// It is typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	verbose    bool
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Keyvault finds the shortest walk that collects every key in a vault map",
		Long:         `Keyvault reads an ASCII vault map of walls, doors, keys and entrances and computes the fewest steps needed to collect every key.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.configure(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.graphCommand())

	return root
}

// configure loads the config file and applies its log level.
// --verbose overrides the configured level.
func (c *CLI) configure() error {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			c.Logger.Debug("no default config path", "err", err)
		}
		path = p
	}
	cfg, err := LoadConfig(path, explicit)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	if path != "" {
		c.Logger.Debug("configuration loaded", "path", path)
	}
	return nil
}

// readInput returns the contents of args[0], or of in when args is empty.
func readInput(in io.Reader, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
