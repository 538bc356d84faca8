package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_DebugOnlyWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewLogger(LogConfig{Writer: &buf})
	quiet.Debug("hidden-msg")
	assert.NotContains(t, buf.String(), "hidden-msg")

	buf.Reset()
	loud := NewLogger(LogConfig{Verbose: true, Writer: &buf})
	loud.Debug("shown-msg", "key", "value")
	assert.Contains(t, buf.String(), "shown-msg")
	assert.Contains(t, buf.String(), "key=value")
}

func TestSetupLogging_ReplacesGlobal(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Verbose: true, Writer: &buf})
	t.Cleanup(func() { SetupLogging(LogConfig{}) })

	Debug("global-debug")
	Warn("global-warn")

	out := buf.String()
	assert.Contains(t, out, "global-debug")
	assert.Contains(t, out, "global-warn")
	assert.Same(t, logger, Logger())
}
