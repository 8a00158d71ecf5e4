package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warden-sh/warden/internal/engine/shellwords"
)

func segOf(command string, args ...string) shellwords.Segment {
	return shellwords.Segment{Command: command, Args: args}
}

func TestCheckRm(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed bool
	}{
		{"no flags", []string{"file.txt"}, true},
		{"recursive only", []string{"-r", "/"}, true},
		{"force only", []string{"-f", "/"}, true},
		{"combined on relative path", []string{"-rf", "./build"}, true},
		{"combined on root", []string{"-rf", "/"}, false},
		{"uppercase recursive", []string{"-Rf", "/"}, false},
		{"split flags", []string{"-r", "-f", "~"}, false},
		{"home expansion literal", []string{"-rf", "$HOME"}, false},
		{"home subpath", []string{"-rf", "~/projects"}, false},
		{"absolute path", []string{"-rf", "/var/tmp/x"}, false},
		{"long options ignored", []string{"--recursive", "--force", "/"}, true},
		{"flags after target", []string{"/", "-rf"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := checkRm(tt.args)
			assert.Equal(t, tt.allowed, v.Allowed)
			if !tt.allowed {
				assert.Equal(t, "rm-recursive-force", v.Rule)
			}
		})
	}
}

func TestCheckDd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed bool
	}{
		{"file target", []string{"if=/dev/zero", "of=/tmp/file", "bs=1M"}, true},
		{"reading a device is fine", []string{"if=/dev/sda", "of=backup.img"}, true},
		{"sata disk", []string{"of=/dev/sda"}, false},
		{"ide disk", []string{"of=/dev/hda1"}, false},
		{"nvme namespace", []string{"of=/dev/nvme0n1"}, false},
		{"darwin disk", []string{"of=/dev/disk2"}, false},
		{"darwin raw disk", []string{"of=/dev/rdisk2"}, false},
		{"null device", []string{"of=/dev/null"}, true},
		{"no of argument", []string{"if=image.iso"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := checkDd(tt.args)
			assert.Equal(t, tt.allowed, v.Allowed)
			if !tt.allowed {
				assert.Equal(t, "dd-block-device", v.Rule)
			}
		})
	}
}

func TestCheckMkfs(t *testing.T) {
	assert.False(t, checkMkfs([]string{"/dev/sdb1"}).Allowed)
	assert.False(t, checkMkfs([]string{"-f", "/dev/nvme1n1"}).Allowed)
	assert.True(t, checkMkfs([]string{"disk.img"}).Allowed)
}

func TestCheckChmod(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed bool
	}{
		{"777 on root", []string{"777", "/"}, false},
		{"777 recursive on root", []string{"-R", "777", "/"}, false},
		{"777 on directory", []string{"777", "./dir"}, true},
		{"755 on root", []string{"755", "/"}, true},
		{"mode with leading zero", []string{"0777", "/"}, false},
		{"no arguments", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := checkChmod(tt.args)
			assert.Equal(t, tt.allowed, v.Allowed)
			if !tt.allowed {
				assert.Equal(t, "chmod-root-777", v.Rule)
			}
		})
	}
}

// Symbolic modes are out of scope for the chmod rule: a=rwx on / is
// equivalent to 777 but deliberately passes. This pins the current boundary.
func TestChmodRuleNarrowScope(t *testing.T) {
	assert.True(t, checkChmod([]string{"a=rwx", "/"}).Allowed)
	assert.True(t, checkChmod([]string{"a+rwx", "/"}).Allowed)
}

func TestCheckKillSignal(t *testing.T) {
	assert.False(t, checkKillSignal([]string{"-9", "nginx"}).Allowed)
	assert.False(t, checkKillSignal([]string{"-KILL", "nginx"}).Allowed)
	assert.False(t, checkKillSignal([]string{"-SIGKILL", "nginx"}).Allowed)
	assert.True(t, checkKillSignal([]string{"-TERM", "nginx"}).Allowed)
	assert.True(t, checkKillSignal([]string{"nginx"}).Allowed)
	// -9 must be its own token; -91 is something else.
	assert.True(t, checkKillSignal([]string{"-91"}).Allowed)
}

func TestCheckUserdelAndGroupdel(t *testing.T) {
	assert.False(t, checkUserdel([]string{"-r", "alice"}).Allowed)
	assert.True(t, checkUserdel([]string{"alice"}).Allowed)

	assert.False(t, checkGroupdel([]string{"staff"}).Allowed)
	assert.False(t, checkGroupdel(nil).Allowed)
}

func TestApplyRules_DispatchesOnCommand(t *testing.T) {
	// A dangerous argument under an unruled command is fine.
	v := applyRules(segOf("echo", "rm", "-rf", "/"))
	assert.True(t, v.Allowed)

	v = applyRules(segOf("rm", "-rf", "/"))
	assert.False(t, v.Allowed)

	// mkfs matches on prefix, covering every mkfs.* variant.
	v = applyRules(segOf("mkfs.btrfs", "/dev/sdc"))
	assert.False(t, v.Allowed)
	assert.Equal(t, "mkfs-device", v.Rule)
}
