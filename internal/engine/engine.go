// Package engine implements the safe command-execution engine: it accepts a
// shell command line, decides whether it is safe to run, executes it under a
// bounded timeout, and reports a normalized outcome.
//
// The engine is synchronous and single-threaded: the only blocking point is
// the child-process wait inside Run/Evaluate, and cancellation is a polled
// advisory flag, not preemption.
package engine

import (
	"errors"

	"github.com/warden-sh/warden/internal/config"
	"github.com/warden-sh/warden/internal/interrupt"
)

// Reserved exit codes. ExitTimedOut is the sentinel the timeout(1) helper
// uses for a command it killed; it is passed through verbatim.
const (
	ExitBlocked     = 1
	ExitTimedOut    = 124
	ExitSpawnFailed = 127
	ExitInterrupted = 130
)

var (
	// ErrEmptyCommand is returned for an empty or whitespace-only line.
	ErrEmptyCommand = errors.New("empty command line")
	// ErrBlocked is returned when the danger classifier rejects a line.
	// The specific reason is logged, not part of the return value.
	ErrBlocked = errors.New("command blocked by safety rules")
	// ErrInterrupted is returned when the cooperative interrupt flag was set
	// before dispatch.
	ErrInterrupted = errors.New("interrupted")
)

// Outcome is the normalized result of running a command line.
type Outcome struct {
	ExitCode int
	TimedOut bool
}

// Engine vets and executes shell command lines. Each Engine owns its two
// existence caches, so instances can coexist without cross-contamination.
type Engine struct {
	cfg      *config.Config
	intr     *interrupt.Flag
	cmdCache *ExistenceCache
	fnCache  *ExistenceCache
}

// New creates an Engine from cfg. The interrupt flag may be nil when the
// caller has no signal handling; the engine only ever reads it.
func New(cfg *config.Config, intr *interrupt.Flag) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	fnCapacity := cfg.FunctionCacheCapacity
	if fnCapacity == 0 {
		fnCapacity = cfg.CacheCapacity
	}
	return &Engine{
		cfg:      cfg,
		intr:     intr,
		cmdCache: NewExistenceCache(cfg.CacheCapacity),
		fnCache:  NewExistenceCache(fnCapacity),
	}
}

// Config returns the engine's configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// interrupted reports whether cancellation has been requested. The flag is
// only read, never cleared, by the engine.
func (e *Engine) interrupted() bool {
	return e.intr != nil && e.intr.Interrupted()
}

// shell returns the configured execution shell.
func (e *Engine) shell() string {
	if e.cfg.Shell != "" {
		return e.cfg.Shell
	}
	return config.DefaultShell
}

// timeout returns the effective bound in seconds for a caller-supplied value.
func (e *Engine) timeout(seconds int) int {
	if seconds > 0 {
		return seconds
	}
	return e.cfg.DefaultTimeout
}
