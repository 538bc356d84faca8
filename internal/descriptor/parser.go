package descriptor

import (
	"fmt"
	"io"
	"strings"

	oerrors "github.com/opmodel/booter/internal/errors"
)

// Parser decodes one descriptor format.
type Parser interface {
	// Format names the format in errors and diagnostics.
	Format() string

	// Parse decodes data. name is the resource name, used by formats
	// that report positions.
	Parse(name string, data []byte) (*Descriptor, error)
}

var parsers = map[string]Parser{
	".xml":  xmlParser{},
	".yaml": yamlParser{},
	".yml":  yamlParser{},
	".json": jsonParser{},
	".toml": tomlParser{},
	".cue":  cueParser{},
}

// ParserFor returns the parser registered for ext (".xml", ".yaml", ...).
func ParserFor(ext string) (Parser, bool) {
	p, ok := parsers[strings.ToLower(ext)]
	return p, ok
}

// Load reads res to completion, closes it, and decodes it. Read failures
// are configuration errors; decode failures are parse errors.
func Load(res *Resource) (*Descriptor, error) {
	parser, ok := ParserFor(res.Ext())
	if !ok {
		return nil, oerrors.NewConfigurationError(
			fmt.Sprintf("unsupported descriptor extension %q", res.Ext()),
			res.Location,
			"Use one of "+strings.Join(Extensions, ", "),
		)
	}

	data, err := readAll(res)
	if err != nil {
		return nil, &oerrors.DetailError{
			Type:     "configuration error",
			Message:  "unreadable descriptor",
			Location: res.Location,
			Cause:    oerrors.ErrConfiguration,
			Err:      err,
		}
	}

	d, err := parser.Parse(res.Name, data)
	if err != nil {
		return nil, oerrors.NewParseError(parser.Format(), res.Location, err)
	}
	d.Location = res.Location
	d.Format = parser.Format()
	return d, nil
}

func readAll(res *Resource) ([]byte, error) {
	rc, err := res.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
