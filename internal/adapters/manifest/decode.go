package manifest

import (
	"go.trai.ch/plugload/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	nameKey    = "name"
	versionKey = "version"
	mainKey    = "main"
)

// Decode parses a JSON or YAML manifest. Sections and the dependencies in
// them keep the order they have in the document.
func Decode(data []byte) (*domain.Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(domain.ErrManifestParseFailed, err.Error())
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, zerr.Wrap(domain.ErrInvalidManifest, "manifest is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, "manifest must be an object"), "line", root.Line)
	}

	m := domain.NewManifest()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		switch {
		case key.Value == nameKey && value.Kind == yaml.ScalarNode:
			m.Name = value.Value
		case key.Value == versionKey && value.Kind == yaml.ScalarNode:
			m.Version = value.Value
		case key.Value == mainKey && value.Kind == yaml.ScalarNode:
			m.Main = value.Value
		case value.Kind == yaml.MappingNode:
			if section, ok := decodeSection(value); ok {
				m.SetSection(key.Value, section)
			}
		}
	}
	return m, nil
}

// decodeSection reads a name to version mapping. Mappings holding anything
// other than scalars, such as "scripts" with nested objects, are not sections.
func decodeSection(node *yaml.Node) (domain.Section, bool) {
	section := make(domain.Section, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, false
		}
		section = append(section, domain.Dependency{Name: key.Value, Version: value.Value})
	}
	return section, true
}
