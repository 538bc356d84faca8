package descriptor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	oerrors "github.com/opmodel/booter/internal/errors"
)

// Extensions lists the supported descriptor extensions in lookup order.
var Extensions = []string{".xml", ".yaml", ".yml", ".json", ".toml", ".cue"}

// Resource is a located, not yet opened, descriptor.
type Resource struct {
	// Name is the file name, e.g. "demo.xml".
	Name string

	// Location is a human-readable location for diagnostics.
	Location string

	open func() (io.ReadCloser, error)
}

// Open opens the resource for reading. Callers close it.
func (r *Resource) Open() (io.ReadCloser, error) {
	return r.open()
}

// Ext returns the resource extension including the dot.
func (r *Resource) Ext() string {
	return path.Ext(r.Name)
}

// Locator finds the descriptor resource for an application.
type Locator interface {
	// Locate returns the resource for appName or an error wrapping
	// errors.ErrNotFound when there is none.
	Locate(appName string) (*Resource, error)
}

// DirLocator searches an ordered list of directories. The first
// directory holding any supported extension wins.
type DirLocator struct {
	Dirs []string
}

// NewDirLocator creates a locator over dirs.
func NewDirLocator(dirs ...string) *DirLocator {
	return &DirLocator{Dirs: dirs}
}

// Locate implements Locator.
func (l *DirLocator) Locate(appName string) (*Resource, error) {
	for _, dir := range l.Dirs {
		for _, ext := range Extensions {
			name := appName + ext
			p := filepath.Join(dir, name)

			info, err := os.Stat(p)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, fmt.Errorf("checking %s: %w", p, err)
			}
			if !info.Mode().IsRegular() {
				continue
			}

			return FileResource(p), nil
		}
	}
	return nil, notFound(appName)
}

// FileResource returns the resource for a descriptor file given by path.
// The format follows its extension.
func FileResource(p string) *Resource {
	return &Resource{
		Name:     filepath.Base(p),
		Location: p,
		open:     func() (io.ReadCloser, error) { return os.Open(p) },
	}
}

// LoadFile loads the descriptor file at p.
func LoadFile(p string) (*Descriptor, error) {
	return Load(FileResource(p))
}

// FSLocator searches a single root inside an fs.FS, typically an
// embedded set of packaged descriptors.
type FSLocator struct {
	FS   fs.FS
	Root string
}

// Locate implements Locator.
func (l *FSLocator) Locate(appName string) (*Resource, error) {
	root := l.Root
	if root == "" {
		root = "."
	}
	for _, ext := range Extensions {
		name := appName + ext
		p := path.Join(root, name)

		info, err := fs.Stat(l.FS, p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("checking %s: %w", p, err)
		}
		if info.IsDir() {
			continue
		}

		return &Resource{
			Name:     name,
			Location: "fs:" + p,
			open:     func() (io.ReadCloser, error) { return l.FS.Open(p) },
		}, nil
	}
	return nil, notFound(appName)
}

// Chain tries each locator in turn and returns the first hit.
type Chain []Locator

// Locate implements Locator.
func (c Chain) Locate(appName string) (*Resource, error) {
	for _, l := range c {
		res, err := l.Locate(appName)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, oerrors.ErrNotFound) {
			return nil, err
		}
	}
	return nil, notFound(appName)
}

func notFound(appName string) error {
	return oerrors.Wrap(oerrors.ErrNotFound, "descriptor for "+appName)
}
