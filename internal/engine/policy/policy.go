// Package policy implements the danger classifier: heuristic rules that
// decide whether a shell command line is safe to hand to the execution
// wrapper. It is an advisory gate against accidents, not a security boundary
// against an adversarial author of the input string.
package policy

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/warden-sh/warden/internal/engine/shellwords"
)

// Verdict is the result of classifying a command line.
type Verdict struct {
	Allowed bool
	Rule    string // identifier of the rule that fired; empty when allowed
	Reason  string // human-readable explanation; empty when allowed
}

// allowed is the passing verdict.
var allowed = Verdict{Allowed: true}

// blockedf builds a rejecting verdict for the named rule.
func blockedf(rule, format string, args ...any) Verdict {
	return Verdict{Rule: rule, Reason: fmt.Sprintf(format, args...)}
}

// blockedMetachars are the raw characters the cheap pre-filter rejects before
// any tokenization happens. Even a syntactically valid compound command is
// still a compound command.
const blockedMetachars = ";&()"

// forkBombRe matches the classic self-referential function/background-loop
// shape, with whitespace tolerated between every glyph.
var forkBombRe = regexp.MustCompile(`:\s*\(\s*\)\s*\{\s*:\s*\|\s*:\s*&\s*\}\s*;\s*:`)

// shellInterpreters are the command base names that make a pipe target a
// shell injection vector.
var shellInterpreters = map[string]bool{
	"sh":   true,
	"bash": true,
	"zsh":  true,
	"ksh":  true,
	"dash": true,
}

// HasBlockedMetachars reports whether line contains any raw compound-command
// metacharacter. Callers on the raw-execution path apply this ahead of Scan;
// the evaluate path does not use it.
func HasBlockedMetachars(line string) bool {
	return strings.ContainsAny(line, blockedMetachars)
}

// PreFilter is the coarse gate applied before classification on the
// raw-execution path. Init-tool bootstrap lines legitimately contain the
// blocked characters and are exempt.
func PreFilter(line string) Verdict {
	if IsInitCommand(line) {
		return allowed
	}
	if HasBlockedMetachars(line) {
		return blockedf("metacharacters", "compound-command characters (one of %q) are not allowed", blockedMetachars)
	}
	return allowed
}

// Scan classifies a full command line. Checks run in a fixed order so the
// reported reason is reproducible: init-tool allowlist, fork-bomb literal,
// pipe-to-shell, then per-segment command rules in source order. Scan is a
// pure function of the line and the rule table.
func Scan(line string) Verdict {
	if IsInitCommand(line) {
		return allowed
	}

	if forkBombRe.MatchString(line) {
		return blockedf("fork-bomb", "fork bomb pattern")
	}

	tokens := shellwords.Split(line)
	if len(tokens) == 0 {
		// Nothing to check.
		return allowed
	}

	if v := checkPipeToShell(tokens); !v.Allowed {
		return v
	}

	segments, err := shellwords.Segments(tokens)
	if err != nil {
		return blockedf("dangling-operator", "%v", err)
	}
	for _, seg := range segments {
		if v := applyRules(seg); !v.Allowed {
			return v
		}
	}

	return allowed
}

// checkPipeToShell rejects lines that pipe anything into a shell interpreter.
// Only the single-pipe operator feeds data into the following command, so
// `||` is not considered.
func checkPipeToShell(tokens []string) Verdict {
	for i, tok := range tokens {
		if tok != "|" {
			continue
		}
		// Find the next segment's real command.
		j := i + 1
		for j < len(tokens) && shellwords.IsSkippable(tokens[j]) {
			j++
		}
		if j >= len(tokens) || shellwords.IsOperator(tokens[j]) {
			continue
		}
		if base := path.Base(tokens[j]); shellInterpreters[base] {
			return blockedf("pipe-to-shell", "piping into %s executes arbitrary input", base)
		}
	}
	return allowed
}
