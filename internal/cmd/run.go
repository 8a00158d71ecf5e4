package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/warden-sh/warden/internal/engine"
	"github.com/warden-sh/warden/internal/term"
)

var (
	runTimeout  int
	runEvaluate bool
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <command line>",
	Short: "Vet a command line and execute it under a timeout",
	Long: `Run joins its arguments into a single command line, checks it against the
danger heuristics, and executes it through the configured shell under the
timeout bound. The child's exit code becomes warden's exit code.

With --evaluate, the looser interactive-evaluation path is used instead: no
metacharacter pre-filter, and scanning is skipped for tool-init bootstrap
lines, package-manager installs, and in performance mode.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		line := strings.Join(args, " ")

		var outcome engine.Outcome
		if runEvaluate {
			outcome, err = eng.Evaluate(line, runTimeout, false)
		} else {
			outcome, err = eng.Run(line, runTimeout)
		}
		if err != nil {
			switch {
			case errors.Is(err, engine.ErrBlocked):
				term.Error("command blocked by safety rules")
			case errors.Is(err, engine.ErrInterrupted):
				term.Error("interrupted before execution")
			case errors.Is(err, engine.ErrEmptyCommand):
				term.Error("empty command line")
			default:
				term.Error("%v", err)
			}
			return NewExitCodeError(outcome.ExitCode)
		}

		if outcome.TimedOut {
			term.Warn("command timed out")
		}
		if outcome.ExitCode != 0 {
			return NewExitCodeError(outcome.ExitCode)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().IntVarP(&runTimeout, "timeout", "t", 0, "timeout in seconds (0 = config default)")
	runCmd.Flags().BoolVar(&runEvaluate, "evaluate", false, "use the interactive evaluation path")
	rootCmd.AddCommand(runCmd)
}
