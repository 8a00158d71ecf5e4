// Package pathutil resolves user-relative filesystem paths for warden's
// config and state locations.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome resolves a leading ~ or ~/ against the current user's home
// directory. Paths without the prefix, or when the home directory cannot be
// determined, come back unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
