package domain

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Namespace groups the plugins of one package scope, e.g. "myco" for "@myco/gulp-x".
type Namespace struct {
	name     string
	order    []string
	bindings map[string]*Binding
}

func newNamespace(name string) *Namespace {
	return &Namespace{
		name:     name,
		bindings: make(map[string]*Binding),
	}
}

// Name returns the scope name without the leading "@".
func (n *Namespace) Name() string {
	return n.name
}

// Names returns the exposed names in the namespace in bind order.
func (n *Namespace) Names() []string {
	return slices.Clone(n.order)
}

// Lookup returns the binding exposed under name.
func (n *Namespace) Lookup(name string) (*Binding, bool) {
	b, ok := n.bindings[name]
	return b, ok
}

// Get resolves and returns the value exposed under name.
func (n *Namespace) Get(name string) (any, error) {
	b, ok := n.bindings[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrPluginNotFound, "no such plugin"), "path", n.name+PathSeparator+name)
	}
	return b.Get()
}

// entry is a top-level slot: either a binding or a namespace.
type entry struct {
	binding   *Binding
	namespace *Namespace
}

// Plugins is the result of a load: exposed names mapped to bindings, with
// scoped packages grouped under namespaces.
type Plugins struct {
	order   []string
	entries map[string]entry
	loaded  []string
}

// NewPlugins creates an empty result tree.
func NewPlugins() *Plugins {
	return &Plugins{
		entries: make(map[string]entry),
	}
}

// Owner reports which raw name already occupies path.
// A namespace occupying a top-level name is reported as "@name/*".
func (p *Plugins) Owner(path PropertyPath) (string, bool) {
	if path.Namespace == "" {
		e, ok := p.entries[path.Name]
		if !ok {
			return "", false
		}
		if e.binding != nil {
			return e.binding.RawName, true
		}
		return "@" + e.namespace.name + "/*", true
	}

	e, ok := p.entries[path.Namespace]
	if !ok {
		return "", false
	}
	if e.binding != nil {
		return e.binding.RawName, true
	}
	if b, ok := e.namespace.bindings[path.Name]; ok {
		return b.RawName, true
	}
	return "", false
}

// Add places b at its path, creating the namespace if needed.
func (p *Plugins) Add(b *Binding) error {
	if existing, taken := p.Owner(b.Path); taken {
		return zerr.With(
			zerr.With(zerr.Wrap(ErrDuplicateBinding, "property already defined"), "exposed_name", b.Path.String()),
			"existing_raw_name", existing,
		)
	}

	if b.Path.Namespace == "" {
		p.entries[b.Path.Name] = entry{binding: b}
		p.order = append(p.order, b.Path.Name)
	} else {
		ns := p.ensureNamespace(b.Path.Namespace)
		ns.bindings[b.Path.Name] = b
		ns.order = append(ns.order, b.Path.Name)
	}
	p.loaded = append(p.loaded, b.RawName)
	return nil
}

func (p *Plugins) ensureNamespace(name string) *Namespace {
	if e, ok := p.entries[name]; ok {
		return e.namespace
	}
	ns := newNamespace(name)
	p.entries[name] = entry{namespace: ns}
	p.order = append(p.order, name)
	return ns
}

// Names returns the top-level exposed names, namespaces included, in bind order.
func (p *Plugins) Names() []string {
	return slices.Clone(p.order)
}

// LoadedPlugins returns the raw package names that were bound, in bind order.
func (p *Plugins) LoadedPlugins() []string {
	return slices.Clone(p.loaded)
}

// Lookup returns the top-level binding exposed under name.
func (p *Plugins) Lookup(name string) (*Binding, bool) {
	e, ok := p.entries[name]
	if !ok || e.binding == nil {
		return nil, false
	}
	return e.binding, true
}

// Namespace returns the namespace exposed under name.
func (p *Plugins) Namespace(name string) (*Namespace, bool) {
	e, ok := p.entries[name]
	if !ok || e.namespace == nil {
		return nil, false
	}
	return e.namespace, true
}

// Binding returns the binding at a dotted path such as "foo" or "myco.testPlugin".
// A top-level name containing a dot wins over a namespace lookup.
func (p *Plugins) Binding(path string) (*Binding, bool) {
	if b, ok := p.Lookup(path); ok {
		return b, true
	}
	nsName, name, found := strings.Cut(path, PathSeparator)
	if !found {
		return nil, false
	}
	ns, ok := p.Namespace(nsName)
	if !ok {
		return nil, false
	}
	return ns.Lookup(name)
}

// Get returns the value at a dotted path, resolving it on first access.
func (p *Plugins) Get(path string) (any, error) {
	b, ok := p.Binding(path)
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrPluginNotFound, "no such plugin"), "path", path)
	}
	return b.Get()
}

// MustGet is like Get but panics on error.
func (p *Plugins) MustGet(path string) any {
	v, err := p.Get(path)
	if err != nil {
		panic(err)
	}
	return v
}

// Bindings returns every binding depth-first in bind order.
func (p *Plugins) Bindings() []*Binding {
	var out []*Binding
	for _, name := range p.order {
		e := p.entries[name]
		if e.binding != nil {
			out = append(out, e.binding)
			continue
		}
		for _, local := range e.namespace.order {
			out = append(out, e.namespace.bindings[local])
		}
	}
	return out
}

// Preload resolves every pending binding, stopping at the first error.
func (p *Plugins) Preload(ctx context.Context) error {
	for _, b := range p.Bindings() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := b.Get(); err != nil {
			return err
		}
	}
	return nil
}

// Fingerprint hashes the set of (path, raw name) pairs. Two trees exposing the
// same plugins under the same names share a fingerprint regardless of bind order
// or resolution state.
func (p *Plugins) Fingerprint() string {
	pairs := make([]string, 0, len(p.loaded))
	for _, b := range p.Bindings() {
		pairs = append(pairs, b.Path.String()+"\x00"+b.RawName)
	}
	slices.Sort(pairs)

	hasher := xxhash.New()
	for _, pair := range pairs {
		_, _ = hasher.WriteString(pair)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
