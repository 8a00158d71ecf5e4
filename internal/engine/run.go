package engine

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/warden-sh/warden/internal/clog"
	"github.com/warden-sh/warden/internal/engine/policy"
)

// timeoutHelper is the external utility used to enforce execution bounds.
// When it is absent the engine runs in degraded, unbounded mode.
const timeoutHelper = "timeout"

// Run vets line and executes it under a bound of timeoutSeconds (the
// configured default when non-positive). The metacharacter pre-filter and
// the full danger scan both apply; a rejection returns ErrBlocked with a
// generic failure status, and the specific reason goes to the log only.
func (e *Engine) Run(line string, timeoutSeconds int) (Outcome, error) {
	if strings.TrimSpace(line) == "" {
		return Outcome{ExitCode: ExitBlocked}, ErrEmptyCommand
	}

	if v := policy.PreFilter(line); !v.Allowed {
		clog.Error("blocked [%s] %s: %s", v.Rule, v.Reason, line)
		return Outcome{ExitCode: ExitBlocked}, ErrBlocked
	}
	if v := policy.Scan(line); !v.Allowed {
		clog.Error("blocked [%s] %s: %s", v.Rule, v.Reason, line)
		return Outcome{ExitCode: ExitBlocked}, ErrBlocked
	}

	return e.dispatch(line, timeoutSeconds)
}

// dispatch checks the cooperative interrupt flag, then spawns the vetted
// line through the configured shell, wrapped by the timeout helper when the
// host has one.
func (e *Engine) dispatch(line string, timeoutSeconds int) (Outcome, error) {
	if e.interrupted() {
		return Outcome{ExitCode: ExitInterrupted}, ErrInterrupted
	}

	seconds := e.timeout(timeoutSeconds)
	shell := e.shell()

	var cmd *exec.Cmd
	bounded := e.CommandExists(timeoutHelper)
	if bounded {
		cmd = exec.Command(timeoutHelper, strconv.Itoa(seconds), shell, "-o", "pipefail", "-c", line)
	} else {
		clog.Warn("%q helper not found; executing without an enforced bound", timeoutHelper)
		cmd = exec.Command(shell, "-o", "pipefail", "-c", line)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	outcome, err := waitOutcome(cmd.Run(), bounded)
	if err != nil {
		clog.Error("spawn failed for %q: %v", line, err)
		return outcome, err
	}
	clog.Debug("executed (exit=%d timed_out=%v): %s", outcome.ExitCode, outcome.TimedOut, line)
	return outcome, nil
}

// waitOutcome maps a cmd.Run error to a normalized Outcome. The 124 exit
// sentinel means "killed by the timeout wrapper" only when the helper
// actually wrapped the spawn; it is passed through verbatim either way.
func waitOutcome(err error, bounded bool) (Outcome, error) {
	if err == nil {
		return Outcome{}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		return Outcome{ExitCode: code, TimedOut: bounded && code == ExitTimedOut}, nil
	}
	return Outcome{ExitCode: ExitSpawnFailed}, fmt.Errorf("spawn: %w", err)
}
