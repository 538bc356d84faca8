package descriptor

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

type cueParser struct{}

func (cueParser) Format() string { return "cue" }

// Parse evaluates the CUE source and decodes the concrete result. The
// descriptor may use any CUE feature (references, defaults,
// comprehensions) as long as it evaluates to concrete values.
func (cueParser) Parse(name string, data []byte) (*Descriptor, error) {
	ctx := cuecontext.New()

	v := ctx.CompileBytes(data, cue.Filename(name))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling: %w", err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validating: %w", err)
	}

	var d Descriptor
	if err := v.Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	return &d, nil
}
