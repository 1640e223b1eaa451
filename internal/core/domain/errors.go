package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigurationNotFound is returned when no manifest can be obtained from the options,
	// the given path or the upward directory search.
	ErrConfigurationNotFound = zerr.New(
		"could not find dependencies. Do you have a package.json file in your project?",
	)

	// ErrManifestReadFailed is returned when a manifest file exists but cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when a manifest file cannot be decoded.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrInvalidManifest is returned when a manifest decodes but has an unexpected shape.
	ErrInvalidManifest = zerr.New("invalid manifest")

	// ErrInvalidPattern is returned when a glob pattern cannot be compiled.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrDuplicateBinding is returned when two matched names map to the same exposed property.
	ErrDuplicateBinding = zerr.New("duplicate binding")

	// ErrPluginNotFound is returned when a path does not name a bound plugin.
	ErrPluginNotFound = zerr.New("plugin not found")

	// ErrModuleNotFound is returned by the built-in resolvers when a module cannot be resolved.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrModuleLoadFailed is returned when a registered module loader fails.
	ErrModuleLoadFailed = zerr.New("failed to load module")

	// ErrOptionsReadFailed is returned when the options file cannot be read.
	ErrOptionsReadFailed = zerr.New("failed to read options file")

	// ErrOptionsParseFailed is returned when the options file cannot be parsed.
	ErrOptionsParseFailed = zerr.New("failed to parse options file")

	// ErrInvalidConstraint is returned when a declared version is not a valid semver constraint.
	ErrInvalidConstraint = zerr.New("invalid version constraint")

	// ErrVersionMismatch is returned when an installed module does not satisfy its declared constraint.
	ErrVersionMismatch = zerr.New("installed version does not satisfy declared constraint")

	// ErrCheckFailed is returned when at least one plugin fails the installation check.
	ErrCheckFailed = zerr.New("plugin check failed")
)
