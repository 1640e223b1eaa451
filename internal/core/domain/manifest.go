package domain

import "slices"

// Dependency is a single declared package and its version constraint.
type Dependency struct {
	Name    string
	Version string
}

// Section is an ordered list of dependencies as declared in the manifest.
type Section []Dependency

// Manifest is the dependency declaration of a project.
// Sections and the dependencies inside them keep their declaration order.
type Manifest struct {
	// Name is the package name of the project itself, if declared.
	Name string
	// Version is the project's own version, if declared.
	Version string
	// Main is the declared entry point, if any.
	Main string

	// Path is the file the manifest was read from. Empty for in-memory manifests.
	Path string

	order    []string
	sections map[string]Section
}

// NewManifest creates an empty Manifest.
func NewManifest() *Manifest {
	return &Manifest{
		sections: make(map[string]Section),
	}
}

// ManifestFromMap builds a Manifest from plain maps.
// Map iteration order is random, so sections and dependencies are sorted by name.
func ManifestFromMap(sections map[string]map[string]string) *Manifest {
	m := NewManifest()

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		deps := sections[name]
		pkgs := make([]string, 0, len(deps))
		for pkg := range deps {
			pkgs = append(pkgs, pkg)
		}
		slices.Sort(pkgs)

		section := make(Section, 0, len(pkgs))
		for _, pkg := range pkgs {
			section = append(section, Dependency{Name: pkg, Version: deps[pkg]})
		}
		m.SetSection(name, section)
	}
	return m
}

// With appends dependencies to a section and returns the manifest for chaining.
func (m *Manifest) With(section string, deps ...Dependency) *Manifest {
	m.SetSection(section, append(slices.Clone(m.sections[section]), deps...))
	return m
}

// SetSection replaces the contents of a section.
func (m *Manifest) SetSection(name string, deps Section) {
	if m.sections == nil {
		m.sections = make(map[string]Section)
	}
	if _, exists := m.sections[name]; !exists {
		m.order = append(m.order, name)
	}
	m.sections[name] = slices.Clone(deps)
}

// Section returns the dependencies declared in the named section.
func (m *Manifest) Section(name string) Section {
	return m.sections[name]
}

// Sections returns the section names in declaration order.
func (m *Manifest) Sections() []string {
	return slices.Clone(m.order)
}

// Names returns the distinct dependency names across the given sections.
// The first occurrence wins, so a name declared in two sections keeps the
// position of the earlier section.
func (m *Manifest) Names(scopes []string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, scope := range scopes {
		for _, dep := range m.sections[scope] {
			if _, ok := seen[dep.Name]; ok {
				continue
			}
			seen[dep.Name] = struct{}{}
			names = append(names, dep.Name)
		}
	}
	return names
}

// DeclaredVersion returns the declared version of a dependency in the first of the
// given sections that declares it.
func (m *Manifest) DeclaredVersion(name string, scopes []string) (string, bool) {
	for _, scope := range scopes {
		for _, dep := range m.sections[scope] {
			if dep.Name == name {
				return dep.Version, true
			}
		}
	}
	return "", false
}

// ManifestSource describes where the manifest for one invocation comes from.
// Manifest wins over Path, Path wins over the upward search from Cwd.
type ManifestSource struct {
	Manifest *Manifest
	Path     string
	Cwd      string
}
