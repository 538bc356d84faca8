package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
	}{
		{"yaml", FormatYAML},
		{"YML", FormatYAML},
		{"json", FormatJSON},
		{"table", FormatTable},
		{"", FormatTable},
		{"xml", OutputFormat("xml")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOutputFormat(tt.input))
		})
	}
}

func TestOutputFormatIsValid(t *testing.T) {
	for _, f := range ValidFormats() {
		assert.True(t, OutputFormat(f).IsValid(), f)
	}
	assert.False(t, OutputFormat("dir").IsValid())
	assert.True(t, ParseOutputFormat("yml").IsValid())
	assert.False(t, ParseOutputFormat("xml").IsValid())
}

func TestFormatField(t *testing.T) {
	line := FormatField("basedir", "/app", "env")
	assert.Contains(t, line, "basedir")
	assert.Contains(t, line, "/app")
	assert.Contains(t, line, "(env)")

	assert.NotContains(t, FormatField("entry", "x", ""), "(")
}

func TestColorEnabled_NonFileWriter(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}))
}
