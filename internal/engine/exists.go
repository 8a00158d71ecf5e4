package engine

import (
	"os/exec"
	"strings"
)

// Namespace tags for the two existence caches.
const (
	cmdNamespace = "cmd"
	fnNamespace  = "fn"
)

// CommandExists reports whether name resolves to an executable on PATH.
// Results are memoized in the command existence cache.
func (e *Engine) CommandExists(name string) bool {
	key := CacheKey(cmdNamespace, name)
	if v, ok := e.cmdCache.Lookup(key); ok {
		return v
	}
	_, err := exec.LookPath(name)
	exists := err == nil
	e.cmdCache.Insert(key, exists)
	return exists
}

// FunctionExists reports whether name is defined as a shell function in the
// configured shell's interactive environment. Results are memoized in the
// function existence cache.
func (e *Engine) FunctionExists(name string) bool {
	key := CacheKey(fnNamespace, name)
	if v, ok := e.fnCache.Lookup(key); ok {
		return v
	}
	probe := exec.Command(e.shell(), "-c", "typeset -f -- "+shellQuote(name)+" >/dev/null 2>&1")
	exists := probe.Run() == nil
	e.fnCache.Insert(key, exists)
	return exists
}

// shellQuote wraps s in single quotes, escaping embedded single quotes, so
// it is safe to interpolate into a shell probe.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
