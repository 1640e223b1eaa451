// Package binder places matched plugins into the result tree, eagerly or lazily.
package binder

import (
	"fmt"
	"strings"

	"go.trai.ch/plugload/internal/core/domain"
	"go.trai.ch/plugload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Binder binds matched raw names under their exposed paths.
type Binder struct {
	cfg     *domain.Config
	resolve domain.ResolveFunc
	logger  ports.Logger
}

// New creates a Binder. resolve loads a module by raw name; logger receives
// the debug trace when cfg.Debug is set and may be nil otherwise.
func New(cfg *domain.Config, resolve domain.ResolveFunc, logger ports.Logger) *Binder {
	return &Binder{
		cfg:     cfg,
		resolve: resolve,
		logger:  logger,
	}
}

// Bind exposes raw at path in plugins.
// An eager binder resolves immediately and returns the resolver's error unchanged.
func (b *Binder) Bind(plugins *domain.Plugins, raw string, path domain.PropertyPath) error {
	if existing, taken := plugins.Owner(path); taken {
		return duplicateError(raw, existing, path)
	}

	load := b.loader(raw, path)

	var binding *domain.Binding
	if b.cfg.Lazy {
		b.debug("lazy loading plugin", "plugin", raw, "path", path.String())
		binding = domain.NewPendingBinding(path, raw, load)
	} else {
		b.debug("requiring plugin", "plugin", raw, "path", path.String())
		value, err := load()
		if err != nil {
			return err
		}
		binding = domain.NewResolvedBinding(path, raw, value)
	}

	return plugins.Add(binding)
}

func (b *Binder) loader(raw string, path domain.PropertyPath) func() (any, error) {
	transform := b.transformFor(path)
	return func() (any, error) {
		if b.cfg.Lazy {
			b.debug("requiring plugin", "plugin", raw, "path", path.String())
		}
		value, err := b.resolve(raw)
		if err != nil {
			return nil, err
		}
		if transform != nil {
			value = transform(value)
		}
		return value, nil
	}
}

// transformFor picks the transform keyed by the dotted path, e.g. "myco.x",
// and falls back to the local name, which then applies in every namespace.
func (b *Binder) transformFor(path domain.PropertyPath) domain.TransformFunc {
	if t, ok := b.cfg.PostRequireTransforms[path.String()]; ok {
		return t
	}
	return b.cfg.PostRequireTransforms[path.Name]
}

func (b *Binder) debug(msg string, args ...any) {
	if !b.cfg.Debug || b.logger == nil {
		return
	}
	b.logger.Debug(msg, args...)
}

func duplicateError(raw, existing string, path domain.PropertyPath) error {
	var msg string
	if isScoped(raw) || isScoped(existing) {
		msg = fmt.Sprintf(
			"could not define the property %q for %q: %q already defines it, you may have repeated a dependency in another scope",
			path.String(), raw, existing,
		)
	} else {
		msg = fmt.Sprintf(
			"could not define the property %q for %q: %q already defines it, you may have repeated dependencies in your manifest",
			path.String(), raw, existing,
		)
	}

	err := zerr.Wrap(domain.ErrDuplicateBinding, msg)
	err = zerr.With(err, "exposed_name", path.String())
	err = zerr.With(err, "raw_name", raw)
	err = zerr.With(err, "existing_raw_name", existing)
	return zerr.With(err, "namespace", path.Namespace)
}

func isScoped(raw string) bool {
	return strings.HasPrefix(raw, "@")
}
