package engine

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/warden-sh/warden/internal/clog"
)

// FromHook fetches shell-init code by invoking `tool subcommand shellArg`
// and evaluates the captured stdout with scanning bypassed: the code comes
// from the named binary, not from freely-typed input.
//
// A tool that is not installed is a silent no-op, since absence of an
// optional integration is not an error. A tool that fails or emits nothing
// is a reported failure the caller may ignore.
func (e *Engine) FromHook(tool, subcommand, shellArg string) error {
	if subcommand == "" {
		subcommand = "init"
	}

	if !e.CommandExists(tool) {
		clog.Debug("hook: %s not installed, skipping", tool)
		return nil
	}

	out, err := exec.Command(tool, subcommand, shellArg).Output()
	if err != nil {
		clog.Warn("hook: %s %s %s failed: %v", tool, subcommand, shellArg, err)
		return fmt.Errorf("hook %s: %w", tool, err)
	}

	code := strings.TrimSpace(string(out))
	if code == "" {
		clog.Warn("hook: %s %s emitted no init code", tool, subcommand)
		return fmt.Errorf("hook %s: empty init output", tool)
	}

	if _, err := e.Evaluate(code, e.cfg.DefaultTimeout, true); err != nil {
		return fmt.Errorf("hook %s: %w", tool, err)
	}
	return nil
}
