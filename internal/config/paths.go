package config

import (
	"os"
	"path/filepath"
)

// DefaultSearchPath returns the descriptor search path for a base
// directory: <basedir>/etc first, then <basedir> itself.
func DefaultSearchPath(baseDir string) []string {
	return []string{
		filepath.Join(baseDir, "etc"),
		baseDir,
	}
}

// ParseSearchPath splits an OS path list, dropping empty entries.
func ParseSearchPath(list string) []string {
	var out []string
	for _, p := range filepath.SplitList(list) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
