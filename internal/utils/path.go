package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath replaces a leading "~/" with the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
