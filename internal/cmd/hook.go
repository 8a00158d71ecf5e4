package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/warden-sh/warden/internal/term"
)

var hookSubcommand string

var hookCmd = &cobra.Command{
	Use:   "hook <tool> [shell]",
	Short: "Evaluate a tool's shell-integration init code",
	Long: `Hook invokes '<tool> init <shell>' (or another subcommand via --subcommand),
captures its stdout, and evaluates the emitted init code with scanning
bypassed: the code comes from the tool binary, not from typed input.

A tool that is not installed is silently skipped, so hooks for optional
integrations are safe to leave in shell startup files.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		shellArg := currentShellName()
		if len(args) == 2 {
			shellArg = args[1]
		}

		if err := eng.FromHook(args[0], hookSubcommand, shellArg); err != nil {
			term.Warn("%v", err)
			return NewExitCodeError(1)
		}
		return nil
	},
}

// currentShellName guesses the caller's shell from $SHELL, defaulting to
// the lowest common denominator.
func currentShellName() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh)
	}
	return "sh"
}

func init() {
	hookCmd.Flags().StringVar(&hookSubcommand, "subcommand", "init", "tool subcommand that emits init code")
	rootCmd.AddCommand(hookCmd)
}
