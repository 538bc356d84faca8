// Package booter runs the launch sequence: load the application
// descriptor, apply its settings, build an isolated loader over its
// classpath, and transfer control to its entry point.
//
// The phases run in a fixed order on the calling goroutine:
//
//	Setup:       LoadConfig -> ApplySettings -> CreateLoader
//	ExecuteMain: resolve entry point -> merge arguments -> invoke
package booter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/opmodel/booter/internal/classpath"
	"github.com/opmodel/booter/internal/config"
	"github.com/opmodel/booter/internal/descriptor"
	oerrors "github.com/opmodel/booter/internal/errors"
	"github.com/opmodel/booter/internal/loader"
	"github.com/opmodel/booter/internal/output"
	"github.com/opmodel/booter/internal/props"
	"github.com/opmodel/booter/internal/tuning"
)

// Booter holds the state shared by the launch phases.
type Booter struct {
	env     config.Environment
	locator descriptor.Locator
	system  loader.Loader
	props   *props.Table
	runtime tuning.Runtime
	opener  loader.OpenFunc
	logger  *log.Logger
	runID   string

	desc     *descriptor.Descriptor
	warnings []error
}

// Option configures a Booter.
type Option func(*Booter)

// WithLocator replaces the descriptor locator. The default searches the
// environment's search path.
func WithLocator(l descriptor.Locator) Option {
	return func(b *Booter) { b.locator = l }
}

// WithSystemLoader replaces the parent of the isolated loader.
func WithSystemLoader(l loader.Loader) Option {
	return func(b *Booter) { b.system = l }
}

// WithProperties replaces the property table written by ApplySettings.
func WithProperties(t *props.Table) Option {
	return func(b *Booter) { b.props = t }
}

// WithRuntime replaces the runtime knobs written by ApplySettings.
func WithRuntime(rt tuning.Runtime) Option {
	return func(b *Booter) { b.runtime = rt }
}

// WithPluginOpener replaces how plugin locations are opened.
func WithPluginOpener(open loader.OpenFunc) Option {
	return func(b *Booter) { b.opener = open }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(b *Booter) { b.logger = l }
}

// WithRunID fixes the launch identifier.
func WithRunID(id string) Option {
	return func(b *Booter) { b.runID = id }
}

// New creates a Booter for env. Nothing is read until Setup.
func New(env config.Environment, opts ...Option) *Booter {
	if len(env.SearchPath) == 0 {
		env.SearchPath = config.DefaultSearchPath(env.BaseDir)
	}

	b := &Booter{
		env:     env,
		system:  loader.System(),
		props:   props.Process(),
		runtime: tuning.Go(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.locator == nil {
		b.locator = descriptor.NewDirLocator(env.SearchPath...)
	}
	if b.logger == nil {
		b.logger = output.NewLogger(output.LogConfig{Verbose: env.Debug})
	}
	if b.runID == "" {
		b.runID = uuid.NewString()
	}
	b.logger = b.logger.With("run", b.runID)
	return b
}

// Setup validates the environment, loads the descriptor, applies its
// settings and returns the isolated loader for its classpath. Settings
// that were skipped are kept for Warnings.
func (b *Booter) Setup() (*loader.Isolated, error) {
	if err := b.env.Validate(); err != nil {
		return nil, err
	}

	if _, err := b.LoadConfig(); err != nil {
		return nil, err
	}

	b.warnings = b.ApplySettings()

	return b.CreateLoader()
}

// LoadConfig locates, decodes and validates the descriptor.
func (b *Booter) LoadConfig() (*descriptor.Descriptor, error) {
	res, err := b.locator.Locate(b.env.AppName)
	if err != nil {
		if errors.Is(err, oerrors.ErrNotFound) {
			return nil, &oerrors.DetailError{
				Type:    "configuration error",
				Message: "resource not found",
				Context: map[string]string{
					"Application": b.env.AppName,
					"Searched":    strings.Join(b.env.SearchPath, ", "),
				},
				Hint:  fmt.Sprintf("Create %s.xml (or .yaml, .json, .toml, .cue) in one of the searched directories", b.env.AppName),
				Cause: oerrors.ErrConfiguration,
				Err:   err,
			}
		}
		return nil, &oerrors.DetailError{
			Type:    "configuration error",
			Message: "unreadable descriptor",
			Context: map[string]string{"Application": b.env.AppName},
			Cause:   oerrors.ErrConfiguration,
			Err:     err,
		}
	}

	b.logger.Debug("loading configuration", "location", res.Location)

	d, err := descriptor.Load(res)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	b.desc = d
	return d, nil
}

// Descriptor returns the loaded descriptor, or nil before LoadConfig.
func (b *Booter) Descriptor() *descriptor.Descriptor {
	return b.desc
}

// Properties returns the property table written by ApplySettings.
func (b *Booter) Properties() *props.Table {
	return b.props
}

// Warnings returns the settings skipped by the last Setup.
func (b *Booter) Warnings() []error {
	return b.warnings
}

// RunID returns the launch identifier.
func (b *Booter) RunID() string {
	return b.runID
}

// ApplySettings writes the descriptor's properties to the property table
// and its runtime limits to the Go runtime. It is a no-op without a
// settings block and never fails; skipped entries are returned.
func (b *Booter) ApplySettings() []error {
	if b.desc == nil || b.desc.Settings == nil {
		return nil
	}

	var warnings []error
	_, skipped := props.Apply(b.props, b.desc.Settings.Properties, b.logger)
	for _, w := range skipped {
		warnings = append(warnings, w)
	}

	res := tuning.Apply(b.runtime, tuning.Request{
		MemoryLimit: b.desc.Settings.MemoryLimit,
		MaxProcs:    b.desc.Settings.MaxProcs,
	}, b.logger)
	warnings = append(warnings, res.Warnings...)

	return warnings
}

// Classpath resolves the descriptor's classpath against the repository.
func (b *Booter) Classpath() ([]string, error) {
	if b.desc == nil {
		return nil, errNotLoaded
	}
	return classpath.Resolve(b.env.Repo(), b.desc.RelativePaths())
}

// CreateLoader builds a new isolated loader over the resolved classpath
// with the system loader as parent. Each call returns an independent
// loader; none of them runs code from the classpath until Resolve.
func (b *Booter) CreateLoader() (*loader.Isolated, error) {
	cp, err := b.Classpath()
	if err != nil {
		return nil, err
	}

	for _, loc := range cp {
		b.logger.Debug("adding to classpath", "path", loc)
	}

	var opts []loader.Option
	if b.opener != nil {
		opts = append(opts, loader.WithOpener(b.opener))
	}
	return loader.New(cp, b.system, opts...), nil
}

var errNotLoaded = fmt.Errorf("descriptor not loaded: %w", oerrors.ErrConfiguration)
