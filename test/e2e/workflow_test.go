//go:build e2e

package e2e

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

// runWarden executes the binary with args against an isolated config dir and
// returns combined output plus the process exit code.
func runWarden(t *testing.T, args ...string) (string, int) {
	t.Helper()

	cmd := exec.Command(wardenBinary, args...)
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+t.TempDir(), "XDG_STATE_HOME="+t.TempDir())
	out, err := cmd.CombinedOutput()

	code := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("warden %v failed to start: %v", args, err)
		}
		code = exitErr.ExitCode()
	}
	return string(out), code
}

func TestScanVerdicts(t *testing.T) {
	out, code := runWarden(t, "scan", "--", "ls", "-la")
	if code != 0 {
		t.Errorf("scan of safe line: exit = %d, want 0 (output: %s)", code, out)
	}
	if !strings.Contains(out, "allowed") {
		t.Errorf("scan output = %q, want 'allowed'", out)
	}

	out, code = runWarden(t, "scan", "--", "rm", "-rf", "/")
	if code != 1 {
		t.Errorf("scan of dangerous line: exit = %d, want 1 (output: %s)", code, out)
	}
	if !strings.Contains(out, "rm-recursive-force") {
		t.Errorf("scan output = %q, want the rule name", out)
	}
}

func TestRunExecutesAndPropagatesExitCode(t *testing.T) {
	_, code := runWarden(t, "run", "--", "true")
	if code != 0 {
		t.Errorf("run true: exit = %d, want 0", code)
	}

	_, code = runWarden(t, "run", "--", "exit 7")
	if code != 7 {
		t.Errorf("run 'exit 7': exit = %d, want 7", code)
	}

	out, code := runWarden(t, "run", "--", "rm", "-rf", "/")
	if code != 1 {
		t.Errorf("run of dangerous line: exit = %d, want 1 (output: %s)", code, out)
	}
}

func TestRunTimesOut(t *testing.T) {
	if _, err := exec.LookPath("timeout"); err != nil {
		t.Skip("timeout helper not available")
	}

	_, code := runWarden(t, "run", "-t", "1", "--", "sleep", "2")
	if code != 124 {
		t.Errorf("run of overlong sleep: exit = %d, want 124", code)
	}
}

func TestHookMissingToolIsSilent(t *testing.T) {
	out, code := runWarden(t, "hook", "warden-e2e-no-such-tool", "zsh")
	if code != 0 {
		t.Errorf("hook for missing tool: exit = %d, want 0 (output: %s)", code, out)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()
	env := append(os.Environ(), "XDG_CONFIG_HOME="+dir)

	cmd := exec.Command(wardenBinary, "config", "init")
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("config init failed: %v (output: %s)", err, out)
	}

	cmd = exec.Command(wardenBinary, "config", "show")
	cmd.Env = env
	out, err = cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("config show failed: %v (output: %s)", err, out)
	}
	if !strings.Contains(string(out), "default_timeout: 30") {
		t.Errorf("config show output = %q, want the default timeout", out)
	}
}
