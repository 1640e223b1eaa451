package domain

// ModuleInfo describes an installed package as found on disk.
type ModuleInfo struct {
	// Name is the package name from the installed package's manifest.
	Name string
	// Version is the installed version.
	Version string
	// Main is the entry point declared by the package, if any.
	Main string
	// Dir is the directory the package is installed in.
	Dir string
}
