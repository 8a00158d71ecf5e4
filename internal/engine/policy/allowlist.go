package policy

import "regexp"

// The init-tool allowlist recognizes shell-integration bootstrap lines
// emitted by a closed set of trusted binaries. Such lines legitimately
// contain command substitution and other characters the pre-filter would
// reject, and they are produced by the named tool rather than typed freely.
//
// Recognized shapes, each with an optional env-assignment wrapper:
//
//	starship init zsh
//	env STARSHIP_SHELL=zsh starship init zsh
//	eval "$(starship init zsh)"
const (
	initTools = `(?:starship|oh-my-posh|mise|zoxide|atuin|fzf|mcfly)`
	envWrap   = `(?:env\s+(?:[A-Za-z_][A-Za-z0-9_]*=\S*\s+)+)?`
	initCall  = envWrap + initTools + `\s+init\s+[A-Za-z][\w-]*(?:\s+[-\w./=]+)*`
)

var (
	initDirectRe = regexp.MustCompile(`^\s*` + initCall + `\s*$`)
	initEvalRe   = regexp.MustCompile(`^\s*eval\s+"?\$\(\s*` + initCall + `\s*\)"?\s*$`)
)

// packageInstallRe matches the fixed set of package-manager install/add
// invocations that evaluate may run without scanning.
var packageInstallRe = regexp.MustCompile(
	`^\s*(?:npm|yarn|pip|pip3|cargo|brew|apt|yum|dnf|pacman)\s+(?:install|add)(?:\s|$)`)

// IsInitCommand reports whether line is a recognized tool-init bootstrap
// shape: a trusted tool name followed by init and a shell name, in direct,
// env-wrapped, or eval-command-substitution form.
func IsInitCommand(line string) bool {
	return initDirectRe.MatchString(line) || initEvalRe.MatchString(line)
}

// IsPackageInstall reports whether line is a package-manager install or add
// invocation.
func IsPackageInstall(line string) bool {
	return packageInstallRe.MatchString(line)
}
