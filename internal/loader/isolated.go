package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	oerrors "github.com/opmodel/booter/internal/errors"
)

// Isolated is a loader scoped to an explicit list of locations.
//
// Resolution is parent-first: the parent (normally the system loader)
// answers before any location is consulted. Plugin locations are opened
// lazily, in classpath order, and at most once per loader. Directory
// locations serve resources through FindResource.
type Isolated struct {
	locations []string
	parent    Loader
	open      OpenFunc

	mu      sync.Mutex
	plugins map[string]Symbols
	failed  map[string]error
}

// Option configures an Isolated loader.
type Option func(*Isolated)

// WithOpener replaces the plugin opener.
func WithOpener(open OpenFunc) Option {
	return func(l *Isolated) {
		l.open = open
	}
}

// New creates a loader over locations with the given parent. It performs
// no I/O and runs no code from the locations.
func New(locations []string, parent Loader, opts ...Option) *Isolated {
	l := &Isolated{
		locations: append([]string(nil), locations...),
		parent:    parent,
		open:      OpenPlugin,
		plugins:   make(map[string]Symbols),
		failed:    make(map[string]error),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locations implements Loader.
func (l *Isolated) Locations() []string {
	return append([]string(nil), l.locations...)
}

// Parent implements Loader.
func (l *Isolated) Parent() Loader {
	return l.parent
}

// Resolve implements Loader.
func (l *Isolated) Resolve(id string) (EntryPoint, error) {
	if l.parent != nil {
		ep, err := l.parent.Resolve(id)
		if err == nil {
			return ep, nil
		}
		if !errors.Is(err, oerrors.ErrNotFound) {
			return nil, err
		}
	}

	var errs []error
	for _, loc := range l.locations {
		if !IsPlugin(loc) {
			continue
		}

		syms, err := l.plugin(loc)
		if err != nil {
			errs = append(errs, fmt.Errorf("opening %s: %w", loc, err))
			continue
		}

		ep, err := lookupEntryPoint(syms, id)
		if err == nil {
			return ep, nil
		}
		if !errors.Is(err, oerrors.ErrNotFound) {
			errs = append(errs, fmt.Errorf("%s: %w", loc, err))
		}
	}

	return nil, notFound(id, errors.Join(errs...))
}

// plugin opens loc once; failures are remembered too.
func (l *Isolated) plugin(loc string) (Symbols, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if syms, ok := l.plugins[loc]; ok {
		return syms, nil
	}
	if err, ok := l.failed[loc]; ok {
		return nil, err
	}

	syms, err := l.open(loc)
	if err != nil {
		l.failed[loc] = err
		return nil, err
	}
	l.plugins[loc] = syms
	return syms, nil
}

// FindResource returns the path of name inside the first directory
// location containing it.
func (l *Isolated) FindResource(name string) (string, bool) {
	for _, loc := range l.locations {
		info, err := os.Stat(loc)
		if err != nil || !info.IsDir() {
			continue
		}
		p := filepath.Join(loc, filepath.FromSlash(name))
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}
