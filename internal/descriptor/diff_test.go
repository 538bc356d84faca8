package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_EquivalentAcrossFormats(t *testing.T) {
	a, err := Load(memResource("demo.xml", sameDescriptor["demo.xml"]))
	require.NoError(t, err)
	b, err := Load(memResource("demo.toml", sameDescriptor["demo.toml"]))
	require.NoError(t, err)

	out, err := Diff(a, b, false)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDiff_ReportsChanges(t *testing.T) {
	a := &Descriptor{EntryPoint: "com.example.Main", Location: "a.yaml"}
	b := &Descriptor{EntryPoint: "com.example.Other", Location: "b.yaml"}

	out, err := Diff(a, b, false)
	require.NoError(t, err)
	assert.Contains(t, out, "entryPoint")
	assert.Contains(t, out, "com.example.Other")
}

func TestMarshalYAML_OmitsRuntimeFields(t *testing.T) {
	d := &Descriptor{EntryPoint: "m", Location: "/x/demo.xml", Format: "xml"}

	data, err := MarshalYAML(d)
	require.NoError(t, err)
	assert.Equal(t, "entryPoint: m\n", string(data))

	js, err := MarshalJSON(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entryPoint":"m"}`, string(js))
}
