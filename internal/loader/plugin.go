package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"plugin"
	"strings"

	oerrors "github.com/opmodel/booter/internal/errors"
)

// EntryPointsSymbol is the exported map a plugin may use to publish
// several entry points by identifier.
const EntryPointsSymbol = "EntryPoints"

// Symbols is the lookup side of an opened plugin.
type Symbols interface {
	Lookup(name string) (plugin.Symbol, error)
}

// OpenFunc opens the plugin at path. Opening runs the plugin's init
// functions.
type OpenFunc func(path string) (Symbols, error)

// OpenPlugin opens a Go plugin with the standard plugin package.
func OpenPlugin(path string) (Symbols, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// IsPlugin reports whether a location is a loadable plugin.
func IsPlugin(location string) bool {
	return filepath.Ext(location) == ".so"
}

// SymbolName maps an identifier to the exported symbol looked up
// directly: the part after the last '.' or '/', so "com.example.Main"
// resolves to "Main".
func SymbolName(id string) string {
	if i := strings.LastIndexAny(id, "./"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// lookupEntryPoint finds id in an opened plugin, first in its
// EntryPoints map, then as a directly exported symbol.
func lookupEntryPoint(syms Symbols, id string) (EntryPoint, error) {
	if sym, err := syms.Lookup(EntryPointsSymbol); err == nil {
		if ep, ok, err := fromEntryMap(sym, id); err != nil || ok {
			return ep, err
		}
	}

	name := SymbolName(id)
	if name == "" {
		return nil, notFound(id, nil)
	}
	sym, err := syms.Lookup(name)
	if err != nil {
		return nil, notFound(id, nil)
	}
	ep, ok := asEntryPoint(sym)
	if !ok {
		return nil, fmt.Errorf("symbol %s has type %T, want func([]string) error: %w", name, sym, oerrors.ErrDispatch)
	}
	return ep, nil
}

func fromEntryMap(sym plugin.Symbol, id string) (EntryPoint, bool, error) {
	switch m := sym.(type) {
	case *map[string]EntryPoint:
		ep, ok := (*m)[id]
		return ep, ok && ep != nil, nil
	case *map[string]func(context.Context, []string) error:
		fn, ok := (*m)[id]
		return EntryPoint(fn), ok && fn != nil, nil
	case *map[string]func([]string) error:
		fn, ok := (*m)[id]
		if !ok || fn == nil {
			return nil, false, nil
		}
		ep, _ := asEntryPoint(fn)
		return ep, true, nil
	default:
		return nil, false, fmt.Errorf("symbol %s has type %T, want a map of entry points: %w", EntryPointsSymbol, sym, oerrors.ErrDispatch)
	}
}

// asEntryPoint adapts the accepted callable shapes. Variables are
// exported by plugins as pointers, functions as values.
func asEntryPoint(sym any) (EntryPoint, bool) {
	switch fn := sym.(type) {
	case EntryPoint:
		return fn, fn != nil
	case func(context.Context, []string) error:
		return fn, fn != nil
	case func([]string) error:
		if fn == nil {
			return nil, false
		}
		return func(_ context.Context, args []string) error { return fn(args) }, true
	case func([]string):
		if fn == nil {
			return nil, false
		}
		return func(_ context.Context, args []string) error {
			fn(args)
			return nil
		}, true
	case *EntryPoint:
		if fn == nil {
			return nil, false
		}
		return asEntryPoint(*fn)
	case *func(context.Context, []string) error:
		if fn == nil {
			return nil, false
		}
		return asEntryPoint(*fn)
	case *func([]string) error:
		if fn == nil {
			return nil, false
		}
		return asEntryPoint(*fn)
	case *func([]string):
		if fn == nil {
			return nil, false
		}
		return asEntryPoint(*fn)
	default:
		return nil, false
	}
}
