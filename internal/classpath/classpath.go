// Package classpath resolves descriptor classpath elements against the
// repository directory.
package classpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve joins each element to repoDir and returns absolute locations in
// the same order. An empty element list yields an empty classpath.
func Resolve(repoDir string, elements []string) ([]string, error) {
	resolved := make([]string, 0, len(elements))
	for _, el := range elements {
		abs, err := filepath.Abs(filepath.Join(repoDir, el))
		if err != nil {
			return nil, fmt.Errorf("resolving classpath element %q: %w", el, err)
		}
		resolved = append(resolved, abs)
	}
	return resolved, nil
}

// Join renders a classpath with sep, defaulting to the OS path list
// separator.
func Join(locations []string, sep string) string {
	if sep == "" {
		sep = string(os.PathListSeparator)
	}
	return strings.Join(locations, sep)
}
