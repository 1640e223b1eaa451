// Package registry is an in-process module registry that plugins publish themselves into.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/plugload/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// LoadFunc produces a module value on first resolution.
type LoadFunc func() (any, error)

// Registry implements ports.ModuleResolver over registered loaders.
// Resolved values are cached for the life of the registry.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]LoadFunc
	cache   map[string]any

	requestGroup singleflight.Group
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		loaders: make(map[string]LoadFunc),
		cache:   make(map[string]any),
	}
}

var defaultRegistry = New()

// Default returns the process-wide registry used when no resolver is configured.
func Default() *Registry {
	return defaultRegistry
}

// Register publishes value under name. It panics if name is registered twice.
func (r *Registry) Register(name string, value any) {
	r.RegisterFunc(name, func() (any, error) { return value, nil })
}

// RegisterFunc publishes a loader under name, called at most once on first resolution.
// It panics if load is nil or name is registered twice.
func (r *Registry) RegisterFunc(name string, load LoadFunc) {
	if load == nil {
		panic("registry: RegisterFunc loader is nil for " + name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.loaders[name]; dup {
		panic("registry: Register called twice for " + name)
	}
	r.loaders[name] = load
}

// Resolve returns the module registered under name, loading it on first use.
// Concurrent first resolutions of one name share a single load.
func (r *Registry) Resolve(name string) (any, error) {
	r.mu.RLock()
	value, cached := r.cache[name]
	load, known := r.loaders[name]
	r.mu.RUnlock()

	if cached {
		return value, nil
	}
	if !known {
		return nil, notFound(name)
	}

	result, err, _ := r.requestGroup.Do(name, func() (any, error) {
		r.mu.RLock()
		v, ok := r.cache[name]
		r.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := load()
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrModuleLoadFailed, err.Error()), "module", name)
		}

		r.mu.Lock()
		r.cache[name] = v
		r.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Names returns the registered module names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.loaders))
	for name := range r.loaders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func notFound(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrModuleNotFound, fmt.Sprintf("cannot find `%s`", name)), "module", name)
}
