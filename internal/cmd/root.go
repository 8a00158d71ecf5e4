// Package cmd implements the CLI commands for warden.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/warden-sh/warden/internal/clog"
	"github.com/warden-sh/warden/internal/config"
	"github.com/warden-sh/warden/internal/engine"
	"github.com/warden-sh/warden/internal/interrupt"
	"github.com/warden-sh/warden/internal/pathutil"
	"github.com/warden-sh/warden/internal/term"
	"github.com/warden-sh/warden/internal/version"
)

var (
	flagConfig      string
	flagDebug       bool
	flagSilent      bool
	flagPerformance bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "warden",
	Short: "Safety gate for shell command execution",
	Long: `Warden vets shell command lines against danger heuristics, then executes
them under a bounded timeout through a POSIX shell with pipefail enabled.

It is a best-effort advisory gate for interactive shells and shell-emitting
tools, not a sandbox or a security boundary.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		term.SetSilent(flagSilent)
		level := clog.LevelInfo
		logPath := clog.DefaultLogPath()
		if cfg, err := config.Load(flagConfig); err == nil {
			level = clog.ParseLevel(cfg.Log.Level)
			logPath = resolveLogPath(cfg.Log.File)
		}
		if flagDebug {
			level = clog.LevelDebug
		}
		return clog.Configure(logPath, level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/warden/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagSilent, "silent", false, "suppress normal output")
	rootCmd.PersistentFlags().BoolVar(&flagPerformance, "performance", false, "skip danger scanning on the evaluate path")
}

// resolveLogPath maps the configured log file setting to a concrete path.
// Empty selects the XDG state-dir default, the sentinel "none" disables file
// logging, anything else is used as given with ~ expanded.
func resolveLogPath(file string) string {
	switch file {
	case "":
		return clog.DefaultLogPath()
	case "none":
		return ""
	}
	return pathutil.ExpandHome(file)
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}

// newEngine builds an Engine from the loaded config plus flag overrides,
// with SIGINT wired to the cooperative interrupt flag. The returned cleanup
// unregisters the signal handler.
func newEngine() (*engine.Engine, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if flagPerformance {
		cfg.PerformanceMode = true
	}

	intr := interrupt.NewFlag()
	stop := interrupt.Notify(intr)
	return engine.New(cfg, intr), stop, nil
}
