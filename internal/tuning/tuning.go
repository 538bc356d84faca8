// Package tuning applies runtime limits from the descriptor settings
// block to the Go runtime.
package tuning

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"k8s.io/apimachinery/pkg/api/resource"
)

// Runtime is the set of runtime knobs tuning writes to.
type Runtime struct {
	SetMemoryLimit func(limit int64) int64
	GOMAXPROCS     func(n int) int
}

// Go returns the knobs of the running Go runtime.
func Go() Runtime {
	return Runtime{
		SetMemoryLimit: debug.SetMemoryLimit,
		GOMAXPROCS:     runtime.GOMAXPROCS,
	}
}

// Request holds the raw settings values.
type Request struct {
	// MemoryLimit is a quantity such as "512Mi" or "2G". Empty leaves the
	// limit unchanged.
	MemoryLimit string

	// MaxProcs caps GOMAXPROCS when positive.
	MaxProcs int
}

// Result reports what was applied.
type Result struct {
	MemoryLimit int64
	MaxProcs    int
	Warnings    []error
}

// Apply writes req into rt. Invalid values are skipped and reported as
// warnings; they never fail the launch.
func Apply(rt Runtime, req Request, logger *log.Logger) Result {
	var res Result

	if req.MemoryLimit != "" {
		limit, err := ParseMemoryLimit(req.MemoryLimit)
		if err != nil {
			res.Warnings = append(res.Warnings, err)
		} else {
			rt.SetMemoryLimit(limit)
			res.MemoryLimit = limit
			if logger != nil {
				logger.Debug("setting memory limit", "limit", req.MemoryLimit, "bytes", limit)
			}
		}
	}

	switch {
	case req.MaxProcs > 0:
		rt.GOMAXPROCS(req.MaxProcs)
		res.MaxProcs = req.MaxProcs
		if logger != nil {
			logger.Debug("setting GOMAXPROCS", "n", req.MaxProcs)
		}
	case req.MaxProcs < 0:
		res.Warnings = append(res.Warnings, fmt.Errorf("maxProcs %d: must be positive", req.MaxProcs))
	}

	for _, w := range res.Warnings {
		if logger != nil {
			logger.Debug("ignoring runtime setting", "err", w)
		}
	}
	return res
}

// ParseMemoryLimit parses a byte quantity. It must be positive.
func ParseMemoryLimit(s string) (int64, error) {
	q, err := resource.ParseQuantity(s)
	if err != nil {
		return 0, fmt.Errorf("memoryLimit %q: %w", s, err)
	}
	limit, ok := q.AsInt64()
	if !ok || limit <= 0 {
		return 0, fmt.Errorf("memoryLimit %q: must be a positive whole number of bytes", s)
	}
	return limit, nil
}
