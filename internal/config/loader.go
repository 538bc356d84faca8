package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a single input together with its origin.
type ResolvedValue struct {
	Key    string       `json:"key" yaml:"key"`
	Value  string       `json:"value" yaml:"value"`
	Source ConfigSource `json:"source" yaml:"source"`
}

// Resolved is an Environment plus the origin of each input.
type Resolved struct {
	Environment

	// Values lists every input in a stable order.
	Values []ResolvedValue
}

// Source returns where key came from.
func (r *Resolved) Source(key string) ConfigSource {
	for _, v := range r.Values {
		if v.Key == key {
			return v.Source
		}
	}
	return SourceDefault
}

// keys is the stable resolution order.
var keys = []string{KeyAppName, KeyBaseDir, KeyRepoDir, KeyDebug, KeySearchPath}

// Loader reads the environment inputs, optionally overridden by flags.
type Loader struct {
	v     *viper.Viper
	flags map[string]*pflag.Flag
}

// NewLoader creates a loader bound to the process environment.
func NewLoader() *Loader {
	v := viper.New()

	for _, key := range keys {
		_ = v.BindEnv(key, EnvName(key))
	}

	return &Loader{v: v, flags: make(map[string]*pflag.Flag)}
}

// BindFlag lets a command-line flag override key. A nil flag is ignored.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("binding flag %s: %w", flag.Name, err)
	}
	l.flags[key] = flag
	return nil
}

// Resolve reads all inputs and validates the required ones. Missing
// inputs fail here, before anything touches the filesystem.
func (l *Loader) Resolve() (*Resolved, error) {
	res := &Resolved{}

	for _, key := range keys {
		res.Values = append(res.Values, ResolvedValue{
			Key:    key,
			Value:  strings.TrimSpace(l.v.GetString(key)),
			Source: l.source(key),
		})
	}

	res.AppName = res.get(KeyAppName)
	res.BaseDir = res.get(KeyBaseDir)
	res.Debug = l.v.GetBool(KeyDebug)

	if err := res.Environment.Validate(); err != nil {
		return nil, err
	}

	baseDir, err := ExpandPath(res.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", KeyBaseDir, err)
	}
	res.BaseDir = baseDir
	res.setValue(KeyBaseDir, baseDir)

	repo, err := ExpandPath(res.get(KeyRepoDir))
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", KeyRepoDir, err)
	}
	if repo == "" {
		repo = baseDir
	}
	res.RepoDir = repo
	res.setValue(KeyRepoDir, repo)

	res.SearchPath = ParseSearchPath(res.get(KeySearchPath))
	if len(res.SearchPath) == 0 {
		res.SearchPath = DefaultSearchPath(baseDir)
		res.setValue(KeySearchPath, strings.Join(res.SearchPath, string(os.PathListSeparator)))
	}

	return res, nil
}

func (r *Resolved) get(key string) string {
	for _, v := range r.Values {
		if v.Key == key {
			return v.Value
		}
	}
	return ""
}

func (r *Resolved) setValue(key, value string) {
	for i := range r.Values {
		if r.Values[i].Key == key {
			r.Values[i].Value = value
		}
	}
}

// source applies the precedence flag > env > default.
func (l *Loader) source(key string) ConfigSource {
	if f, ok := l.flags[key]; ok && f.Changed {
		return SourceFlag
	}
	if env, ok := os.LookupEnv(EnvName(key)); ok && env != "" {
		return SourceEnv
	}
	return SourceDefault
}
