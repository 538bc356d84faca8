// Package descriptor locates and decodes per-application launch
// descriptors.
//
// A descriptor names the entry point to invoke, the classpath elements
// (relative to the repository directory), optional pre-set arguments and
// an optional runtime settings block. The same model is accepted in XML,
// YAML, JSON, TOML and CUE; the format follows the resource extension.
package descriptor

import (
	"strings"

	oerrors "github.com/opmodel/booter/internal/errors"
)

// Kind distinguishes classpath element types.
type Kind string

const (
	// KindDependency is a single artifact (plugin, archive).
	KindDependency Kind = "dependency"

	// KindDirectory is a directory of resources.
	KindDirectory Kind = "directory"
)

// ClasspathElement is one entry of the classpath, relative to the repository.
type ClasspathElement struct {
	// Kind is informational; resolution treats both kinds alike.
	Kind Kind `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`

	// RelativePath is joined to the repository directory.
	RelativePath string `json:"relativePath" yaml:"relativePath" toml:"relativePath"`
}

// Settings is the optional runtime settings block.
type Settings struct {
	// Properties are "key=value" lines applied to the property table.
	Properties []string `json:"properties,omitempty" yaml:"properties,omitempty" toml:"properties,omitempty"`

	// MemoryLimit is a soft memory limit quantity such as "512Mi".
	MemoryLimit string `json:"memoryLimit,omitempty" yaml:"memoryLimit,omitempty" toml:"memoryLimit,omitempty"`

	// MaxProcs caps GOMAXPROCS when positive.
	MaxProcs int `json:"maxProcs,omitempty" yaml:"maxProcs,omitempty" toml:"maxProcs,omitempty"`
}

// Descriptor is the decoded launch configuration of one application.
// It is read-only once loaded.
type Descriptor struct {
	// ID optionally names the descriptor.
	ID string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`

	// EntryPoint identifies the callable to invoke. Required.
	EntryPoint string `json:"entryPoint" yaml:"entryPoint" toml:"entryPoint"`

	// Classpath lists the elements in load order.
	Classpath []ClasspathElement `json:"classpath,omitempty" yaml:"classpath,omitempty" toml:"classpath,omitempty"`

	// Arguments are prepended to the process arguments. Nil when absent.
	Arguments []string `json:"arguments,omitempty" yaml:"arguments,omitempty" toml:"arguments,omitempty"`

	// Settings is nil when the descriptor has no settings block.
	Settings *Settings `json:"settings,omitempty" yaml:"settings,omitempty" toml:"settings,omitempty"`

	// Location is where the descriptor was loaded from.
	Location string `json:"-" yaml:"-" toml:"-"`

	// Format is the decoder that produced the descriptor.
	Format string `json:"-" yaml:"-" toml:"-"`
}

// Validate checks that the entry point is present and non-blank.
func (d *Descriptor) Validate() error {
	if strings.TrimSpace(d.EntryPoint) == "" {
		return &oerrors.DetailError{
			Type:     "configuration error",
			Message:  "missing entry point",
			Location: d.Location,
			Field:    "entryPoint",
			Hint:     "Set the entry point identifier in the descriptor",
			Cause:    oerrors.ErrConfiguration,
		}
	}
	return nil
}

// Properties returns the settings property lines, or nil.
func (d *Descriptor) Properties() []string {
	if d.Settings == nil {
		return nil
	}
	return d.Settings.Properties
}

// RelativePaths returns the classpath element paths in order.
func (d *Descriptor) RelativePaths() []string {
	paths := make([]string, 0, len(d.Classpath))
	for _, el := range d.Classpath {
		paths = append(paths, el.RelativePath)
	}
	return paths
}
