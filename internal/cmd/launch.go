package cmd

import (
	"context"

	"github.com/opmodel/booter/internal/booter"
	"github.com/opmodel/booter/internal/config"
	"github.com/opmodel/booter/internal/output"
)

// Launch resolves the environment through l, configures diagnostics and
// runs the full launch sequence with args as the process arguments.
func Launch(ctx context.Context, l *config.Loader, args []string, opts ...booter.Option) error {
	res, err := l.Resolve()
	if err != nil {
		return err
	}

	output.SetupLogging(output.LogConfig{Verbose: res.Debug})
	for _, v := range res.Values {
		output.Debug("resolved input", "key", v.Key, "value", v.Value, "source", v.Source)
	}

	opts = append([]booter.Option{booter.WithLogger(output.Logger())}, opts...)
	b := booter.New(res.Environment, opts...)

	cl, err := b.Setup()
	if err != nil {
		return err
	}
	if w := b.Warnings(); len(w) > 0 {
		output.Debug("settings skipped", "count", len(w), "run", b.RunID())
	}

	return b.ExecuteMain(ctx, cl, args)
}
