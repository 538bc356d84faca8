package props

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Warning describes a property line that was skipped.
type Warning struct {
	// Index is the position of the line in the settings block.
	Index int

	// Line is the offending input.
	Line string

	// Reason says why it was skipped.
	Reason string
}

// Error implements the error interface.
func (w *Warning) Error() string {
	return fmt.Sprintf("property %d %q skipped: %s", w.Index, w.Line, w.Reason)
}

// Parse splits line on its first '='. The value may be empty and may
// itself contain '='; the key may not be blank.
func Parse(line string) (key, value string, err error) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", fmt.Errorf("missing '='")
	}
	if strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("empty key")
	}
	return key, value, nil
}

// Apply writes every well-formed line into t, in order. A malformed line
// never stops the run: it is skipped, logged at debug level, and returned
// as a warning. Later lines override earlier ones with the same key.
func Apply(t *Table, lines []string, logger *log.Logger) (applied int, warnings []*Warning) {
	for i, line := range lines {
		key, value, err := Parse(line)
		if err != nil {
			w := &Warning{Index: i, Line: line, Reason: err.Error()}
			warnings = append(warnings, w)
			if logger != nil {
				logger.Debug("skipping malformed property", "line", line, "reason", w.Reason)
			}
			continue
		}

		if logger != nil {
			logger.Debug("setting property", "key", key, "value", value)
		}
		if t.Set(key, value) && logger != nil {
			logger.Debug("property overridden", "key", key)
		}
		applied++
	}
	return applied, warnings
}
