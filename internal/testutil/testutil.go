// Package testutil provides test helpers for booter tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// AppDir creates a base directory with the descriptor written to
// <basedir>/etc/<descriptorName> and returns the base directory.
func AppDir(t *testing.T, descriptorName, content string) string {
	t.Helper()
	base := t.TempDir()
	WriteFile(t, filepath.Join(base, "etc"), descriptorName, content)
	return base
}

// Recorder is an entry point that records each invocation.
type Recorder struct {
	mu    sync.Mutex
	calls [][]string
	ctxs  []context.Context

	// Err is returned from every invocation.
	Err error
}

// Main is the recording entry point.
func (r *Recorder) Main(ctx context.Context, args []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]string(nil), args...))
	r.ctxs = append(r.ctxs, ctx)
	return r.Err
}

// Calls returns the argument slices of every invocation.
func (r *Recorder) Calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// LastContext returns the context of the most recent invocation.
func (r *Recorder) LastContext() context.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ctxs) == 0 {
		return nil
	}
	return r.ctxs[len(r.ctxs)-1]
}
