package descriptor

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/booter/internal/errors"
	"github.com/opmodel/booter/internal/testutil"
)

// memResource builds an in-memory resource for parser tests.
func memResource(name, content string) *Resource {
	return &Resource{
		Name:     name,
		Location: "mem:" + name,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestDirLocator_FirstDirectoryWins(t *testing.T) {
	base := t.TempDir()
	etc := filepath.Join(base, "etc")
	testutil.WriteFile(t, etc, "demo.yaml", "entryPoint: a\n")
	testutil.WriteFile(t, base, "demo.xml", "<daemon/>")

	res, err := NewDirLocator(etc, base).Locate("demo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(etc, "demo.yaml"), res.Location)
	assert.Equal(t, ".yaml", res.Ext())
}

func TestDirLocator_ExtensionOrder(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "demo.cue", `entryPoint: "a"`)
	testutil.WriteFile(t, dir, "demo.xml", "<daemon/>")

	res, err := NewDirLocator(dir).Locate("demo")
	require.NoError(t, err)
	assert.Equal(t, "demo.xml", res.Name)
}

func TestDirLocator_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "demo.xml"), "placeholder", "")

	_, err := NewDirLocator(dir).Locate("demo")
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestDirLocator_NotFound(t *testing.T) {
	_, err := NewDirLocator(t.TempDir(), filepath.Join(t.TempDir(), "missing")).Locate("demo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestFSLocator(t *testing.T) {
	fsys := fstest.MapFS{
		"descriptors/demo.toml": {Data: []byte(`entryPoint = "x"`)},
	}

	res, err := (&FSLocator{FS: fsys, Root: "descriptors"}).Locate("demo")
	require.NoError(t, err)
	assert.Equal(t, "fs:descriptors/demo.toml", res.Location)

	d, err := Load(res)
	require.NoError(t, err)
	assert.Equal(t, "x", d.EntryPoint)
	assert.Equal(t, "toml", d.Format)

	_, err = (&FSLocator{FS: fsys}).Locate("demo")
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestChain(t *testing.T) {
	dir := t.TempDir()
	fsys := fstest.MapFS{"demo.json": {Data: []byte(`{"entryPoint":"embedded"}`)}}

	chain := Chain{NewDirLocator(dir), &FSLocator{FS: fsys}}

	res, err := chain.Locate("demo")
	require.NoError(t, err)
	assert.Equal(t, "fs:demo.json", res.Location)

	testutil.WriteFile(t, dir, "demo.yaml", "entryPoint: on-disk\n")
	res, err = chain.Locate("demo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "demo.yaml"), res.Location)

	_, err = chain.Locate("other")
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := testutil.WriteFile(t, dir, "app.yml", "entryPoint: m\narguments: [a]\n")

	d, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, p, d.Location)
	assert.Equal(t, "yaml", d.Format)
	assert.Equal(t, []string{"a"}, d.Arguments)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, oerrors.ErrConfiguration))
}
