// Package builtin registers entry points linked into every booter binary.
// They exist for smoke-testing descriptors and classpaths without a real
// application.
package builtin

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opmodel/booter/internal/loader"
	"github.com/opmodel/booter/internal/props"
)

// Registered entry point ids.
const (
	EchoID       = "builtin.echo"
	PropertiesID = "builtin.properties"
)

func init() {
	loader.Register(EchoID, Echo(os.Stdout))
	loader.Register(PropertiesID, Properties(os.Stdout))
}

// Echo returns an entry point that prints its arguments space-separated.
func Echo(w io.Writer) loader.EntryPoint {
	return func(_ context.Context, args []string) error {
		_, err := fmt.Fprintln(w, strings.Join(args, " "))
		return err
	}
}

// Properties returns an entry point that prints the property table bound
// to its context as key=value lines in insertion order. Arguments, when
// given, restrict the output to those keys.
func Properties(w io.Writer) loader.EntryPoint {
	return func(ctx context.Context, args []string) error {
		t, ok := props.FromContext(ctx)
		if !ok {
			t = props.Process()
		}

		keys := args
		if len(keys) == 0 {
			keys = t.Keys()
		}
		for _, k := range keys {
			v, ok := t.Get(k)
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s=%s\n", k, v); err != nil {
				return err
			}
		}
		return nil
	}
}
