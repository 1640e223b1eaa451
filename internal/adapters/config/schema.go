package config

import (
	"go.trai.ch/plugload/internal/adapters/manifest"
	"go.trai.ch/plugload/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// OptionsFile represents the structure of the plugload.yaml options file.
type OptionsFile struct {
	Pattern         stringList        `yaml:"pattern"`
	OverridePattern *bool             `yaml:"overridePattern"`
	Config          manifestRef       `yaml:"config"`
	Cwd             string            `yaml:"cwd"`
	Scope           stringList        `yaml:"scope"`
	ReplaceString   string            `yaml:"replaceString"`
	Camelize        *bool             `yaml:"camelize"`
	Lazy            *bool             `yaml:"lazy"`
	MaintainScope   *bool             `yaml:"maintainScope"`
	Rename          map[string]string `yaml:"rename"`
	Debug           bool              `yaml:"DEBUG"`
}

// stringList accepts either a single string or a sequence of strings.
type stringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *stringList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*s = stringList{value.Value}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*s = list
	return nil
}

// manifestRef is either a path to a manifest file or an inline manifest.
type manifestRef struct {
	Path     string
	Manifest *domain.Manifest
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *manifestRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		m.Path = value.Value
		return nil
	}

	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	inline, err := manifest.Decode(data)
	if err != nil {
		return err
	}
	m.Manifest = inline
	return nil
}
