package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/warden-sh/warden/internal/engine"
	"github.com/warden-sh/warden/internal/engine/policy"
	"github.com/warden-sh/warden/internal/term"
)

var scanRaw bool

var scanCmd = &cobra.Command{
	Use:   "scan -- <command line>",
	Short: "Classify a command line without executing it",
	Long: `Scan prints the classifier's verdict for a command line and exits 0 when
it would be allowed, 1 when it would be blocked. Suitable as a shell preexec
guard.

With --raw, the metacharacter pre-filter that the run path applies is
included in the check.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line := strings.Join(args, " ")

		verdict := policy.Verdict{Allowed: true}
		if scanRaw {
			verdict = policy.PreFilter(line)
		}
		if verdict.Allowed {
			verdict = policy.Scan(line)
		}

		if verdict.Allowed {
			term.Println("allowed")
			return nil
		}
		if term.IsInteractive() {
			term.Printf("blocked: %s (%s)\n", verdict.Reason, verdict.Rule)
		} else {
			term.Printf("blocked\t%s\t%s\n", verdict.Rule, verdict.Reason)
		}
		return NewExitCodeError(engine.ExitBlocked)
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanRaw, "raw", false, "also apply the raw metacharacter pre-filter")
	rootCmd.AddCommand(scanCmd)
}
