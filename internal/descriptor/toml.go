package descriptor

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"
)

type tomlParser struct{}

func (tomlParser) Format() string { return "toml" }

func (tomlParser) Parse(_ string, data []byte) (*Descriptor, error) {
	var d Descriptor
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}
