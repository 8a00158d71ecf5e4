package engine

import (
	"os"
	"os/exec"
	"strings"

	"github.com/warden-sh/warden/internal/clog"
	"github.com/warden-sh/warden/internal/engine/policy"
)

// Evaluate runs a command line the way interactive callers do. Unlike Run it
// never applies the metacharacter pre-filter, and scanning is skipped when
// performance mode is on, when the line is a recognized tool-init bootstrap,
// or when it is a package-manager install.
//
// With forceCurrentContext set, all vetting is skipped and the line runs in
// the engine's own process context: inherited environment and stdio, no
// timeout wrapper. That path exists solely for trusted tool-emitted init
// code (see FromHook) and must never be fed freely-typed input.
func (e *Engine) Evaluate(line string, timeoutSeconds int, forceCurrentContext bool) (Outcome, error) {
	if strings.TrimSpace(line) == "" {
		return Outcome{ExitCode: ExitBlocked}, ErrEmptyCommand
	}

	if forceCurrentContext {
		return e.evalInContext(line)
	}

	if !e.scanSkippable(line) {
		if v := policy.Scan(line); !v.Allowed {
			clog.Error("blocked [%s] %s: %s", v.Rule, v.Reason, line)
			return Outcome{ExitCode: ExitBlocked}, ErrBlocked
		}
	}

	return e.dispatch(line, timeoutSeconds)
}

// scanSkippable reports whether scanning may be skipped for line: the
// performance-mode gate and the two trusted shapes compose with OR.
func (e *Engine) scanSkippable(line string) bool {
	return e.cfg.PerformanceMode ||
		policy.IsInitCommand(line) ||
		policy.IsPackageInstall(line)
}

// evalInContext executes line directly in the engine's process context.
// No classification, no timeout helper, environment and stdio inherited.
func (e *Engine) evalInContext(line string) (Outcome, error) {
	cmd := exec.Command(e.shell(), "-o", "pipefail", "-c", line)
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	outcome, err := waitOutcome(cmd.Run(), false)
	if err != nil {
		clog.Error("spawn failed for trusted eval: %v", err)
		return outcome, err
	}
	clog.Debug("evaluated in current context (exit=%d)", outcome.ExitCode)
	return outcome, nil
}
