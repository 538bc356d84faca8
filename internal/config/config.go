// Package config resolves the booter's process environment: which
// application to launch and where its files live.
package config

import (
	"strings"

	oerrors "github.com/opmodel/booter/internal/errors"
)

// Keys of the process-level inputs. Each key maps to an environment
// variable with dots replaced by underscores, upper-cased.
const (
	// KeyAppName names the application whose descriptor is loaded.
	KeyAppName = "app.name"

	// KeyBaseDir is the installation directory of the application.
	KeyBaseDir = "basedir"

	// KeyRepoDir is the directory classpath elements are relative to.
	// Defaults to the base directory.
	KeyRepoDir = "app.repo"

	// KeyDebug enables diagnostics on stderr.
	KeyDebug = "app.booter.debug"

	// KeySearchPath overrides the directories searched for the descriptor.
	KeySearchPath = "app.booter.path"
)

// Environment is the immutable set of inputs resolved once at startup.
type Environment struct {
	// AppName identifies the descriptor resource to load.
	AppName string `json:"appName" yaml:"appName"`

	// BaseDir is the application base directory.
	BaseDir string `json:"baseDir" yaml:"baseDir"`

	// RepoDir is the repository directory for classpath resolution.
	RepoDir string `json:"repoDir" yaml:"repoDir"`

	// Debug enables diagnostic output.
	Debug bool `json:"debug" yaml:"debug"`

	// SearchPath lists the directories searched for the descriptor, in order.
	SearchPath []string `json:"searchPath" yaml:"searchPath"`
}

// Validate checks the required inputs. It performs no I/O.
func (e Environment) Validate() error {
	if strings.TrimSpace(e.AppName) == "" {
		return missingInput(KeyAppName)
	}
	if strings.TrimSpace(e.BaseDir) == "" {
		return missingInput(KeyBaseDir)
	}
	return nil
}

// Repo returns the repository directory, falling back to the base directory.
func (e Environment) Repo() string {
	if e.RepoDir != "" {
		return e.RepoDir
	}
	return e.BaseDir
}

func missingInput(key string) error {
	return oerrors.NewConfigurationError(
		"missing required input '"+key+"'",
		"",
		"Set the "+EnvName(key)+" environment variable",
	)
}

// EnvName returns the environment variable bound to a key.
func EnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
