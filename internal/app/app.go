// Package app implements the application layer for plugload.
package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/plugload/internal/adapters/logger" //nolint:depguard // debug trace logger
	"go.trai.ch/plugload/internal/core/domain"
	"go.trai.ch/plugload/internal/core/ports"
	"go.trai.ch/plugload/internal/engine/binder"
	"go.trai.ch/plugload/internal/engine/matcher"
	"go.trai.ch/plugload/internal/engine/naming"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manifests ports.ManifestLoader
	resolver  ports.ModuleResolver
	inspector ports.ModuleInspector
	logger    ports.Logger
	telemetry ports.Telemetry

	traceOut io.Writer
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	resolver ports.ModuleResolver,
	inspector ports.ModuleInspector,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		manifests: manifests,
		resolver:  resolver,
		inspector: inspector,
		logger:    logger,
		telemetry: telemetry,
		traceOut:  os.Stdout,
	}
}

// WithOutput sets where the debug trace is written. Defaults to os.Stdout.
func (a *App) WithOutput(w io.Writer) *App {
	a.traceOut = w
	return a
}

// Session is the outcome of one load together with the inputs it was computed from.
type Session struct {
	Config   domain.Config
	Manifest *domain.Manifest
	Plugins  *domain.Plugins
}

// Dir returns the directory installed modules are looked up from: the
// manifest's directory, or the configured working directory for in-memory manifests.
func (s *Session) Dir() string {
	if s.Manifest != nil && s.Manifest.Path != "" {
		return filepath.Dir(s.Manifest.Path)
	}
	if s.Config.Source.Cwd != "" {
		return s.Config.Source.Cwd
	}
	return "."
}

// Version returns the version raw is declared with in the scanned sections.
func (s *Session) Version(raw string) string {
	v, _ := s.Manifest.DeclaredVersion(raw, s.Config.Scopes)
	return v
}

// resolverFactory picks the resolution capability once the manifest is known.
type resolverFactory func(cfg *domain.Config, m *domain.Manifest) domain.ResolveFunc

// Load runs the pipeline and returns the plugins tree.
func (a *App) Load(ctx context.Context, opts domain.Options) (*domain.Plugins, error) {
	s, err := a.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	return s.Plugins, nil
}

// Open runs the pipeline and returns the full session.
// The caller's RequireFn is used when set, the configured resolver otherwise.
func (a *App) Open(ctx context.Context, opts domain.Options) (*Session, error) {
	return a.open(ctx, opts, a.defaultResolver)
}

func (a *App) defaultResolver(cfg *domain.Config, _ *domain.Manifest) domain.ResolveFunc {
	if cfg.RequireFn != nil {
		return cfg.RequireFn
	}
	if a.resolver == nil {
		return nil
	}
	return a.resolver.Resolve
}

func (a *App) open(ctx context.Context, opts domain.Options, resolverFor resolverFactory) (s *Session, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, vertex := a.telemetry.Record(ctx, "load")
	defer func() { vertex.Complete(err) }()

	cfg := domain.Normalize(opts)
	trace := a.tracer(cfg.Debug)
	if trace != nil {
		trace.Debug("debug enabled",
			"pattern", strings.Join(cfg.Patterns, ","),
			"scope", strings.Join(cfg.Scopes, ","),
			"replaceString", cfg.Replace.String(),
			"camelize", cfg.Camelize,
			"lazy", cfg.Lazy,
			"maintainScope", cfg.MaintainScope,
		)
	}

	m, err := a.manifests.Load(cfg.Source)
	if err != nil {
		return nil, err
	}

	match, err := matcher.New(cfg.Patterns)
	if err != nil {
		return nil, err
	}
	names := match.Filter(m.Names(cfg.Scopes))
	vertex.Log(domain.LogLevelInfo, "matched "+strconv.Itoa(len(names))+" plugins")
	if trace != nil {
		trace.Debug("found plugins", "count", len(names), "plugins", strings.Join(names, ","))
	}

	resolve := resolverFor(&cfg, m)
	if resolve == nil {
		resolve = unresolvable
	}

	plugins := domain.NewPlugins()
	b := binder.New(&cfg, resolve, trace)
	for _, raw := range names {
		if err := b.Bind(plugins, raw, naming.Transform(raw, &cfg)); err != nil {
			return nil, err
		}
	}

	return &Session{Config: cfg, Manifest: m, Plugins: plugins}, nil
}

// tracer returns the debug trace logger, or nil when tracing is off.
func (a *App) tracer(enabled bool) ports.Logger {
	if !enabled {
		return nil
	}
	return logger.NewWithWriter(a.traceOut, slog.LevelDebug)
}

func unresolvable(name string) (any, error) {
	return nil, zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "cannot find `"+name+"`"), "module", name)
}
