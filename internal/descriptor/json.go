package descriptor

import (
	"sigs.k8s.io/yaml"
)

type jsonParser struct{}

func (jsonParser) Format() string { return "json" }

func (jsonParser) Parse(_ string, data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := yaml.UnmarshalStrict(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
