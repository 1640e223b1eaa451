// Package plugload discovers the plugins a project declares in its manifest
// and exposes them under short property names.
//
// The manifest (package.json or package.yaml) is found by searching upward
// from the working directory. Every dependency name matching the configured
// globs is renamed ("gulp-foo-bar" becomes "fooBar") and bound either eagerly
// or on first access:
//
//	plugins, err := plugload.Load(plugload.Options{})
//	if err != nil {
//		return err
//	}
//	sass, err := plugins.Get("sass")
//
// Modules are resolved from the default registry unless Options.RequireFn is set.
// Plugin packages publish themselves from an init function:
//
//	func init() {
//		plugload.Register("gulp-sass", New)
//	}
package plugload

import (
	"context"

	"go.trai.ch/plugload/internal/adapters/logger"
	"go.trai.ch/plugload/internal/adapters/manifest"
	"go.trai.ch/plugload/internal/adapters/nodemodules"
	"go.trai.ch/plugload/internal/adapters/registry"
	"go.trai.ch/plugload/internal/adapters/telemetry"
	"go.trai.ch/plugload/internal/app"
	"go.trai.ch/plugload/internal/core/domain"
)

type (
	// Options configures one load. The zero value loads every gulp-* plugin lazily.
	Options = domain.Options
	// Plugins is the tree of bound plugins returned by Load.
	Plugins = domain.Plugins
	// Namespace groups the plugins of one package scope.
	Namespace = domain.Namespace
	// Binding is a single exposed plugin.
	Binding = domain.Binding
	// Manifest is an ordered dependency declaration.
	Manifest = domain.Manifest
	// Dependency is one declared package and its version.
	Dependency = domain.Dependency
	// ResolveFunc resolves a package name to its module value.
	ResolveFunc = domain.ResolveFunc
	// TransformFunc post-processes a resolved module.
	TransformFunc = domain.TransformFunc
)

// Errors returned by Load and by plugin access. Match them with errors.Is.
var (
	ErrConfigurationNotFound = domain.ErrConfigurationNotFound
	ErrDuplicateBinding      = domain.ErrDuplicateBinding
	ErrPluginNotFound        = domain.ErrPluginNotFound
	ErrModuleNotFound        = domain.ErrModuleNotFound
	ErrModuleLoadFailed      = domain.ErrModuleLoadFailed
	ErrInvalidPattern        = domain.ErrInvalidPattern
	ErrManifestParseFailed   = domain.ErrManifestParseFailed
	ErrInvalidManifest       = domain.ErrInvalidManifest
)

// Manifest section names.
const (
	Dependencies     = domain.SectionDependencies
	DevDependencies  = domain.SectionDevDependencies
	PeerDependencies = domain.SectionPeerDependencies
)

// Bool returns a pointer to b, for the optional boolean fields of Options.
func Bool(b bool) *bool {
	return domain.Bool(b)
}

// Load discovers and binds the plugins selected by opts.
func Load(opts Options) (*Plugins, error) {
	return LoadContext(context.Background(), opts)
}

// LoadContext is like Load but stops early when ctx is done.
func LoadContext(ctx context.Context, opts Options) (*Plugins, error) {
	return newApp().Load(ctx, opts)
}

func newApp() *app.App {
	log := logger.New()
	return app.New(
		manifest.NewLoader(log),
		registry.Default(),
		nodemodules.NewInspector(),
		log,
		telemetry.NewNoOp(),
	)
}

// Register publishes a module value under a package name in the default registry.
// It panics if name is registered twice.
func Register(name string, value any) {
	registry.Default().Register(name, value)
}

// RegisterFunc publishes a loader that runs once, on first resolution of name.
func RegisterFunc(name string, load func() (any, error)) {
	registry.Default().RegisterFunc(name, load)
}

// NewManifest creates an empty in-memory manifest for Options.Config.
func NewManifest() *Manifest {
	return domain.NewManifest()
}

// ManifestFromMap builds an in-memory manifest from section maps.
// Sections and dependencies are sorted by name.
func ManifestFromMap(sections map[string]map[string]string) *Manifest {
	return domain.ManifestFromMap(sections)
}

// ParseManifest decodes package.json or package.yaml content.
func ParseManifest(data []byte) (*Manifest, error) {
	return manifest.Decode(data)
}
