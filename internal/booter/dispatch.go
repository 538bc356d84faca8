package booter

import (
	"context"

	oerrors "github.com/opmodel/booter/internal/errors"
	"github.com/opmodel/booter/internal/loader"
	"github.com/opmodel/booter/internal/props"
)

// MergeArgs returns preset followed by args. The inputs are not modified.
func MergeArgs(preset, args []string) []string {
	merged := make([]string, 0, len(preset)+len(args))
	merged = append(merged, preset...)
	return append(merged, args...)
}

// ExecuteMain resolves the entry point through l and invokes it once with
// the merged arguments. The context handed to the entry point carries l,
// the property table and the run id. The entry point's error is returned
// as is.
func (b *Booter) ExecuteMain(ctx context.Context, l loader.Loader, args []string) error {
	if b.desc == nil {
		return errNotLoaded
	}

	id := b.desc.EntryPoint
	ep, err := l.Resolve(id)
	if err != nil {
		return oerrors.NewDispatchError(id, l.Locations(), err)
	}

	merged := MergeArgs(b.desc.Arguments, args)

	ctx = loader.NewContext(ctx, l)
	ctx = props.NewContext(ctx, b.props)
	ctx = withRunID(ctx, b.runID)

	b.logger.Debug("invoking entry point", "entryPoint", id, "args", len(merged))

	return ep(ctx, merged)
}

// Run performs Setup and ExecuteMain.
func (b *Booter) Run(ctx context.Context, args []string) error {
	l, err := b.Setup()
	if err != nil {
		return err
	}
	return b.ExecuteMain(ctx, l, args)
}

type runIDKey struct{}

func withRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the launch identifier seen by an entry point.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok
}
