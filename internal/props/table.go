// Package props holds the process property table: named string values
// set from the descriptor's settings block before the entry point runs.
//
// The table is explicit state. The booter writes it once per launch and
// hands it to the entry point through the launch context; nothing looks
// it up through a global.
package props

import (
	"context"
	"sync"
)

// Table is an insertion-ordered string map safe for concurrent readers.
type Table struct {
	mu     sync.RWMutex
	values map[string]string
	order  []string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string]string)}
}

var process = NewTable()

// Process returns the table owned by this process. It is empty at start.
func Process() *Table {
	return process
}

// Set stores value under key and reports whether it replaced a value.
func (t *Table) Set(key, value string) (replaced bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, replaced = t.values[key]
	if !replaced {
		t.order = append(t.order, key)
	}
	t.values[key] = value
	return replaced
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the keys in first-set order.
func (t *Table) Keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.order...)
}

// Len returns the number of properties.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.values)
}

// Snapshot returns a copy of the table contents.
func (t *Table) Snapshot() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]string, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

type contextKey struct{}

// NewContext binds t as the property table of the running launch.
func NewContext(ctx context.Context, t *Table) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the table bound by NewContext.
func FromContext(ctx context.Context) (*Table, bool) {
	t, ok := ctx.Value(contextKey{}).(*Table)
	return t, ok
}
