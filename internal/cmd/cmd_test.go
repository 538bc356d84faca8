package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/booter/internal/config"
	oerrors "github.com/opmodel/booter/internal/errors"
	"github.com/opmodel/booter/internal/loader"
	"github.com/opmodel/booter/internal/props"
	"github.com/opmodel/booter/internal/testutil"
)

const testEntryPoint = "cmdtest.Main"

var recorder = &testutil.Recorder{}

func init() {
	loader.Register(testEntryPoint, recorder.Main)
}

// clearEnv blanks every booter input for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.KeyAppName, config.KeyBaseDir, config.KeyRepoDir, config.KeyDebug, config.KeySearchPath} {
		t.Setenv(config.EnvName(key), "")
	}
}

// execute runs booterctl with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

const demoYAML = `id: demo
entryPoint: cmdtest.Main
arguments: ["--foo"]
classpath:
  - relativePath: lib/a.so
  - type: directory
    relativePath: etc
settings:
  properties: ["a=1"]
`

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "booterctl", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	for _, name := range []string{"app", "basedir", "repo", "path", "debug"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}

	var subs []string
	for _, c := range root.Commands() {
		subs = append(subs, c.Name())
	}
	assert.ElementsMatch(t, []string{"run", "describe", "classpath", "diff", "version"}, subs)
}

func TestRun_InvokesEntryPoint(t *testing.T) {
	clearEnv(t)
	base := testutil.AppDir(t, "demo.yaml", "entryPoint: cmdtest.Main\narguments: [\"--foo\"]\n")
	before := len(recorder.Calls())

	_, err := execute(t, "run", "--app", "demo", "--basedir", base, "--", "--bar", "baz")
	require.NoError(t, err)

	calls := recorder.Calls()
	require.Len(t, calls, before+1)
	assert.Equal(t, []string{"--foo", "--bar", "baz"}, calls[len(calls)-1])
}

func TestRun_FromEnvironment(t *testing.T) {
	clearEnv(t)
	base := testutil.AppDir(t, "envapp.xml", "<daemon><mainClass>cmdtest.Main</mainClass></daemon>")
	t.Setenv("APP_NAME", "envapp")
	t.Setenv("BASEDIR", base)
	before := len(recorder.Calls())

	_, err := execute(t, "run", "x")
	require.NoError(t, err)
	assert.Len(t, recorder.Calls(), before+1)
}

func TestRun_MissingInputs(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, "run")
	require.Error(t, err)
	assert.Equal(t, ExitConfigurationError, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "app.name")
}

func TestRun_UnknownEntryPoint(t *testing.T) {
	clearEnv(t)
	base := testutil.AppDir(t, "demo.json", `{"entryPoint": "cmdtest.Nope"}`)
	before := len(recorder.Calls())

	_, err := execute(t, "run", "--app", "demo", "--basedir", base)
	require.Error(t, err)
	assert.Equal(t, ExitDispatchError, ExitCodeFromError(err))
	assert.Len(t, recorder.Calls(), before)
}

func TestRun_ParseError(t *testing.T) {
	clearEnv(t)
	base := testutil.AppDir(t, "demo.yaml", "entryPoint: [unclosed\n")

	_, err := execute(t, "run", "--app", "demo", "--basedir", base)
	require.Error(t, err)
	assert.Equal(t, ExitParseError, ExitCodeFromError(err))
}

func TestDescribe_Formats(t *testing.T) {
	clearEnv(t)
	base := testutil.AppDir(t, "demo.yaml", demoYAML)
	args := []string{"describe", "--app", "demo", "--basedir", base}
	wantClasspath := []string{filepath.Join(base, "lib/a.so"), filepath.Join(base, "etc")}

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, append(args, "-o", "json")...)
		require.NoError(t, err)

		var got Description
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "cmdtest.Main", got.Descriptor.EntryPoint)
		assert.Equal(t, "yaml", got.Format)
		assert.Equal(t, wantClasspath, got.Classpath)
		require.NotEmpty(t, got.Environment)
		assert.Equal(t, config.KeyAppName, got.Environment[0].Key)
		assert.Equal(t, config.SourceFlag, got.Environment[0].Source)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := execute(t, append(args, "-o", "yaml")...)
		require.NoError(t, err)

		alias, err := execute(t, append(args, "-o", "yml")...)
		require.NoError(t, err)
		assert.Equal(t, out, alias)

		var got Description
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, "demo", got.Descriptor.ID)
		assert.Equal(t, []string{"--foo"}, got.Descriptor.Arguments)
		assert.Equal(t, wantClasspath, got.Classpath)
	})

	t.Run("table", func(t *testing.T) {
		out, err := execute(t, args...)
		require.NoError(t, err)

		for _, want := range []string{"Environment", "Descriptor", "Properties", "Classpath", "cmdtest.Main", "a=1", wantClasspath[0]} {
			assert.Contains(t, out, want)
		}
	})
}

func TestDescribe_InvalidFormat(t *testing.T) {
	clearEnv(t)
	base := testutil.AppDir(t, "demo.yaml", demoYAML)

	_, err := execute(t, "describe", "--app", "demo", "--basedir", base, "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestDescribe_DoesNotApplySettings(t *testing.T) {
	clearEnv(t)
	base := testutil.AppDir(t, "demo.yaml", "entryPoint: m\nsettings:\n  properties: [\"describe.only=1\"]\n")

	_, err := execute(t, "describe", "--app", "demo", "--basedir", base, "-o", "json")
	require.NoError(t, err)

	_, found := props.Process().Get("describe.only")
	assert.False(t, found)
}

func TestClasspath(t *testing.T) {
	clearEnv(t)
	base := testutil.AppDir(t, "demo.yaml", demoYAML)
	repo := t.TempDir()

	out, err := execute(t, "classpath", "--app", "demo", "--basedir", base, "--repo", repo, "--separator", ",")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(repo, "lib/a.so")+","+filepath.Join(repo, "etc"), strings.TrimSpace(out))
}

func TestClasspath_ResourceNotFound(t *testing.T) {
	clearEnv(t)
	base := t.TempDir()

	_, err := execute(t, "classpath", "--app", "ghost", "--basedir", base)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrConfiguration))
	assert.Contains(t, err.Error(), "resource not found")
}

func TestDiff(t *testing.T) {
	dir := t.TempDir()
	xmlPath := testutil.WriteFile(t, dir, "demo.xml", `<daemon>
  <mainClass>cmdtest.Main</mainClass>
  <commandLineArguments><commandLineArgument>--foo</commandLineArgument></commandLineArguments>
</daemon>`)
	samePath := testutil.WriteFile(t, dir, "same.yaml", "entryPoint: cmdtest.Main\narguments: [\"--foo\"]\n")
	otherPath := testutil.WriteFile(t, dir, "other.yaml", "entryPoint: cmdtest.Other\n")

	out, err := execute(t, "diff", xmlPath, samePath)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = execute(t, "diff", xmlPath, otherPath)
	require.NoError(t, err)
	assert.Contains(t, out, "entryPoint")
	assert.Contains(t, out, "cmdtest.Other")
}

func TestDiff_RequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "diff", "only-one.yaml")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "CUE")
}
