package domain

const (
	// ManifestFileName is the name of the manifest searched for upward from the working directory.
	ManifestFileName = "package.json"

	// ManifestYAMLFileName is the YAML manifest accepted when no package.json exists in a directory.
	ManifestYAMLFileName = "package.yaml"

	// ModulesDirName is the directory installed packages live in.
	ModulesDirName = "node_modules"

	// OptionsFileName is the name of the optional options file read by the CLI.
	OptionsFileName = "plugload.yaml"

	// SelfPackageName is the package name the loader is published under.
	// It is always excluded from matching so the loader never exposes itself.
	SelfPackageName = "gulp-load-plugins"

	// SectionDependencies is the runtime dependency section of a manifest.
	SectionDependencies = "dependencies"

	// SectionDevDependencies is the development dependency section of a manifest.
	SectionDevDependencies = "devDependencies"

	// SectionPeerDependencies is the peer dependency section of a manifest.
	SectionPeerDependencies = "peerDependencies"

	// DefaultReplaceExpr strips the conventional plugin prefix.
	DefaultReplaceExpr = `^gulp[-.]`

	// PathSeparator joins a namespace and a plugin name in a property path.
	PathSeparator = "."
)

// DefaultPatterns returns the built-in candidate patterns.
func DefaultPatterns() []string {
	return []string{"gulp-*", "gulp.*", "@*/gulp{-,.}*"}
}

// DefaultScopes returns the manifest sections scanned when no scope is configured.
func DefaultScopes() []string {
	return []string{SectionDependencies, SectionDevDependencies, SectionPeerDependencies}
}
