// Package loader resolves entry points by identifier.
//
// The system loader serves entry points compiled into the binary and
// registered with Register, the way database/sql drivers register
// themselves. An Isolated loader is scoped to an explicit list of
// resource locations and delegates to a parent first; Go plugins (.so)
// among its locations are opened on first use and may export further
// entry points.
package loader

import (
	"context"
	"fmt"

	oerrors "github.com/opmodel/booter/internal/errors"
)

// EntryPoint is the callable a launch transfers control to. The context
// carries the loader and property table of the launch.
type EntryPoint func(ctx context.Context, args []string) error

// Loader resolves entry points.
type Loader interface {
	// Resolve returns the entry point registered under id. The error
	// wraps errors.ErrNotFound when no entry point has that id.
	Resolve(id string) (EntryPoint, error)

	// Locations returns the resource locations served by this loader,
	// excluding those of its parents.
	Locations() []string

	// Parent returns the fallback loader, or nil for the top-level loader.
	Parent() Loader
}

func notFound(id string, detail error) error {
	if detail != nil {
		return fmt.Errorf("entry point %q: %w: %w", id, oerrors.ErrNotFound, detail)
	}
	return fmt.Errorf("entry point %q: %w", id, oerrors.ErrNotFound)
}

type contextKey struct{}

// NewContext binds l as the loader of the running launch.
func NewContext(ctx context.Context, l Loader) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the loader bound by NewContext.
func FromContext(ctx context.Context) (Loader, bool) {
	l, ok := ctx.Value(contextKey{}).(Loader)
	return l, ok
}
