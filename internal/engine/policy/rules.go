package policy

import (
	"path"
	"strconv"
	"strings"

	"github.com/warden-sh/warden/internal/engine/shellwords"
)

// ruleFunc evaluates one pipeline segment against a single command's danger
// heuristic. Rules are deliberately narrow: false positives block legitimate,
// common operations, so each rule targets root-like paths, raw block devices
// and privileged flags only.
type ruleFunc func(args []string) Verdict

// commandRules dispatches on the segment's exact command name. The only
// non-exact match is the mkfs. prefix family, handled in applyRules.
var commandRules = map[string]ruleFunc{
	"rm":       checkRm,
	"dd":       checkDd,
	"chmod":    checkChmod,
	"killall":  checkKillSignal,
	"pkill":    checkKillSignal,
	"userdel":  checkUserdel,
	"groupdel": checkGroupdel,
}

// applyRules runs the rule matching the segment's command, if any.
func applyRules(seg shellwords.Segment) Verdict {
	if strings.HasPrefix(seg.Command, "mkfs.") {
		return checkMkfs(seg.Args)
	}
	if rule, ok := commandRules[seg.Command]; ok {
		return rule(seg.Args)
	}
	return allowed
}

// rootLikeTarget reports whether arg names the filesystem root or the user's
// home, in literal or $HOME form.
func rootLikeTarget(arg string) bool {
	return arg == "/" || arg == "~" || arg == "$HOME" ||
		strings.HasPrefix(arg, "/") ||
		strings.HasPrefix(arg, "~/") ||
		strings.HasPrefix(arg, "$HOME/")
}

// checkRm fires only on the recursive+force combination aimed at root-like
// targets. Long options such as --recursive are ignored, so `rm -rf ./build`
// and plain `rm -r /tmp/x` both pass.
func checkRm(args []string) Verdict {
	var recursive, force bool
	for _, a := range args {
		if !strings.HasPrefix(a, "-") || strings.HasPrefix(a, "--") || len(a) < 2 {
			continue
		}
		if strings.ContainsAny(a, "rR") {
			recursive = true
		}
		if strings.Contains(a, "f") {
			force = true
		}
	}
	if !recursive || !force {
		return allowed
	}
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			continue
		}
		if rootLikeTarget(a) {
			return blockedf("rm-recursive-force", "recursive force delete of %q", a)
		}
	}
	return allowed
}

// ddDevicePrefixes are the raw-disk basename families checkDd rejects.
var ddDevicePrefixes = []string{"sd", "hd", "nvme", "disk", "rdisk"}

// checkDd rejects writing to a raw block device via of=.
func checkDd(args []string) Verdict {
	for _, a := range args {
		dev, ok := strings.CutPrefix(a, "of=")
		if !ok || !strings.HasPrefix(dev, "/dev/") {
			continue
		}
		base := path.Base(dev)
		for _, prefix := range ddDevicePrefixes {
			if strings.HasPrefix(base, prefix) {
				return blockedf("dd-block-device", "writing to raw device %q", dev)
			}
		}
	}
	return allowed
}

// checkMkfs rejects formatting anything under /dev.
func checkMkfs(args []string) Verdict {
	for _, a := range args {
		if strings.HasPrefix(a, "/dev/") {
			return blockedf("mkfs-device", "formatting device %q", a)
		}
	}
	return allowed
}

// checkChmod parses the first bare numeric argument as an octal mode and
// fires only for mode 777 applied to / itself. Symbolic modes and recursive
// invocations are intentionally out of scope.
func checkChmod(args []string) Verdict {
	var mode uint64
	haveMode := false
	for _, a := range args {
		if strings.HasPrefix(a, "-") || !isDigits(a) {
			continue
		}
		m, err := strconv.ParseUint(a, 8, 32)
		if err != nil {
			break
		}
		mode = m
		haveMode = true
		break
	}
	if !haveMode || mode != 0o777 {
		return allowed
	}
	for _, a := range args {
		if a == "/" {
			return blockedf("chmod-root-777", "world-writable permissions on /")
		}
	}
	return allowed
}

// checkKillSignal rejects forced kills: SIGKILL cannot be caught, so targets
// get no chance to clean up.
func checkKillSignal(args []string) Verdict {
	for _, a := range args {
		if a == "-9" || a == "-KILL" || a == "-SIGKILL" {
			return blockedf("kill-sigkill", "forced kill with %s", a)
		}
	}
	return allowed
}

// checkUserdel rejects deleting a user together with their home directory.
func checkUserdel(args []string) Verdict {
	for _, a := range args {
		if a == "-r" {
			return blockedf("userdel-remove-home", "userdel -r removes the user's home directory")
		}
	}
	return allowed
}

// checkGroupdel rejects any group deletion.
func checkGroupdel([]string) Verdict {
	return blockedf("groupdel", "group deletion is blocked")
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
