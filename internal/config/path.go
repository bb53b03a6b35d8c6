// Package config resolves the engine configuration from viper.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// inMemoryPath is the SQLite name for a database that lives only in memory.
const inMemoryPath = ":memory:"

// ExpandPath resolves environment variables and a leading ~ in a
// configured path and cleans the result. The SQLite in-memory name is
// returned unchanged.
func ExpandPath(path string) string {
	if path == "" || path == inMemoryPath {
		return path
	}

	path = os.ExpandEnv(path)

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Clean(path)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}

	return filepath.Clean(path)
}
