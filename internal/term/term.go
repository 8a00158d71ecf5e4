// Package term provides user-facing terminal output for the warden CLI.
// This is distinct from operational logging (see internal/clog).
//
// Output functions:
//   - Print/Printf/Println: Normal output to stdout (suppressed with --silent)
//   - Warn: Warnings to stderr (NOT suppressed with --silent)
//   - Error: Errors to stderr (NOT suppressed with --silent)
package term

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

var (
	mu     sync.Mutex
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	silent bool
)

// SetSilent enables or disables silent mode.
// When silent, Print/Printf/Println are suppressed.
// Warn and Error are NOT suppressed (users should always see these).
func SetSilent(s bool) {
	mu.Lock()
	defer mu.Unlock()
	silent = s
}

// IsSilent returns whether silent mode is enabled.
func IsSilent() bool {
	mu.Lock()
	defer mu.Unlock()
	return silent
}

// SetOutput sets the writer for stdout output.
// Pass nil to use os.Stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		stdout = os.Stdout
	} else {
		stdout = w
	}
}

// SetErrOutput sets the writer for stderr output.
// Pass nil to use os.Stderr.
func SetErrOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		stderr = os.Stderr
	} else {
		stderr = w
	}
}

// IsInteractive reports whether stdout is attached to a terminal.
// Used to decide between human-oriented and plain machine output.
func IsInteractive() bool {
	mu.Lock()
	defer mu.Unlock()
	f, ok := stdout.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Print formats and writes to stdout.
// Suppressed when silent mode is enabled.
func Print(a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if silent {
		return
	}
	_, _ = fmt.Fprint(stdout, a...)
}

// Printf formats according to a format specifier and writes to stdout.
// Suppressed when silent mode is enabled.
func Printf(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if silent {
		return
	}
	_, _ = fmt.Fprintf(stdout, format, a...)
}

// Println formats and writes to stdout with a trailing newline.
// Suppressed when silent mode is enabled.
func Println(a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if silent {
		return
	}
	_, _ = fmt.Fprintln(stdout, a...)
}

// Warn writes a warning message to stderr with "Warning: " prefix.
// NOT suppressed by silent mode.
func Warn(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	msg := fmt.Sprintf(format, a...)
	_, _ = fmt.Fprintf(stderr, "Warning: %s\n", msg)
}

// Error writes an error message to stderr with "Error: " prefix.
// NOT suppressed by silent mode.
func Error(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	msg := fmt.Sprintf(format, a...)
	_, _ = fmt.Fprintf(stderr, "Error: %s\n", msg)
}
