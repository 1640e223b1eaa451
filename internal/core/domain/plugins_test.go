package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugload/internal/core/domain"
	"go.trai.ch/zerr"
)

func top(name string) domain.PropertyPath {
	return domain.PropertyPath{Name: name}
}

func scoped(ns, name string) domain.PropertyPath {
	return domain.PropertyPath{Namespace: ns, Name: name}
}

func TestPlugins_AddAndLookup(t *testing.T) {
	p := domain.NewPlugins()
	require.NoError(t, p.Add(domain.NewResolvedBinding(top("foo"), "gulp-foo", "foo-value")))
	require.NoError(t, p.Add(domain.NewResolvedBinding(scoped("myco", "testPlugin"), "@myco/gulp-test-plugin", "tp")))
	require.NoError(t, p.Add(domain.NewResolvedBinding(top("bar"), "gulp-bar", "bar-value")))

	assert.Equal(t, []string{"foo", "myco", "bar"}, p.Names())
	assert.Equal(t, []string{"gulp-foo", "@myco/gulp-test-plugin", "gulp-bar"}, p.LoadedPlugins())

	v, err := p.Get("myco.testPlugin")
	require.NoError(t, err)
	assert.Equal(t, "tp", v)

	ns, ok := p.Namespace("myco")
	require.True(t, ok)
	assert.Equal(t, "myco", ns.Name())
	assert.Equal(t, []string{"testPlugin"}, ns.Names())

	_, ok = p.Lookup("myco")
	assert.False(t, ok)
	_, ok = p.Namespace("foo")
	assert.False(t, ok)
	assert.Equal(t, "bar-value", p.MustGet("bar"))
}

func TestPlugins_GetUnknown(t *testing.T) {
	p := domain.NewPlugins()

	_, err := p.Get("missing")
	require.ErrorIs(t, err, domain.ErrPluginNotFound)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "missing", zErr.Metadata()["path"])

	assert.Panics(t, func() { p.MustGet("missing") })
}

func TestPlugins_DuplicateTopLevel(t *testing.T) {
	p := domain.NewPlugins()
	require.NoError(t, p.Add(domain.NewResolvedBinding(top("foo"), "gulp-foo", 1)))

	err := p.Add(domain.NewResolvedBinding(top("foo"), "gulp.foo", 2))
	require.ErrorIs(t, err, domain.ErrDuplicateBinding)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "gulp-foo", zErr.Metadata()["existing_raw_name"])

	assert.Equal(t, []string{"gulp-foo"}, p.LoadedPlugins())
	assert.Equal(t, 1, p.MustGet("foo"))
}

func TestPlugins_NamespaceOwnership(t *testing.T) {
	p := domain.NewPlugins()
	require.NoError(t, p.Add(domain.NewResolvedBinding(scoped("myco", "a"), "@myco/gulp-a", 1)))

	owner, taken := p.Owner(top("myco"))
	assert.True(t, taken)
	assert.Equal(t, "@myco/*", owner)

	err := p.Add(domain.NewResolvedBinding(top("myco"), "gulp-myco", 2))
	require.ErrorIs(t, err, domain.ErrDuplicateBinding)

	_, taken = p.Owner(scoped("myco", "b"))
	assert.False(t, taken)
}

func TestPlugins_ScopedUnderTopLevelBinding(t *testing.T) {
	p := domain.NewPlugins()
	require.NoError(t, p.Add(domain.NewResolvedBinding(top("myco"), "gulp-myco", 1)))

	err := p.Add(domain.NewResolvedBinding(scoped("myco", "a"), "@myco/gulp-a", 2))
	require.ErrorIs(t, err, domain.ErrDuplicateBinding)
}

func TestPlugins_BindingsDepthFirst(t *testing.T) {
	p := domain.NewPlugins()
	require.NoError(t, p.Add(domain.NewResolvedBinding(scoped("a", "x"), "@a/gulp-x", nil)))
	require.NoError(t, p.Add(domain.NewResolvedBinding(top("y"), "gulp-y", nil)))
	require.NoError(t, p.Add(domain.NewResolvedBinding(scoped("a", "z"), "@a/gulp-z", nil)))

	var paths []string
	for _, b := range p.Bindings() {
		paths = append(paths, b.Path.String())
	}
	assert.Equal(t, []string{"a.x", "a.z", "y"}, paths)
}

func TestPlugins_Preload(t *testing.T) {
	p := domain.NewPlugins()
	resolved := 0
	require.NoError(t, p.Add(domain.NewPendingBinding(top("a"), "gulp-a", func() (any, error) {
		resolved++
		return "a", nil
	})))
	require.NoError(t, p.Add(domain.NewPendingBinding(top("b"), "gulp-b", func() (any, error) {
		resolved++
		return "b", nil
	})))

	require.NoError(t, p.Preload(context.Background()))
	assert.Equal(t, 2, resolved)
	for _, b := range p.Bindings() {
		assert.Equal(t, domain.StateResolved, b.State())
	}
}

func TestPlugins_PreloadPropagatesError(t *testing.T) {
	errBoom := errors.New("boom")
	p := domain.NewPlugins()
	require.NoError(t, p.Add(domain.NewPendingBinding(top("a"), "gulp-a", func() (any, error) {
		return nil, errBoom
	})))

	err := p.Preload(context.Background())
	assert.Same(t, errBoom, err)
}

func TestPlugins_PreloadCanceled(t *testing.T) {
	p := domain.NewPlugins()
	require.NoError(t, p.Add(domain.NewPendingBinding(top("a"), "gulp-a", func() (any, error) {
		return "a", nil
	})))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, p.Preload(ctx), context.Canceled)
}

func TestPlugins_Fingerprint(t *testing.T) {
	first := domain.NewPlugins()
	require.NoError(t, first.Add(domain.NewResolvedBinding(top("a"), "gulp-a", 1)))
	require.NoError(t, first.Add(domain.NewPendingBinding(top("b"), "gulp-b", func() (any, error) { return 2, nil })))

	second := domain.NewPlugins()
	require.NoError(t, second.Add(domain.NewResolvedBinding(top("b"), "gulp-b", "other")))
	require.NoError(t, second.Add(domain.NewResolvedBinding(top("a"), "gulp-a", "other")))

	third := domain.NewPlugins()
	require.NoError(t, third.Add(domain.NewResolvedBinding(top("a"), "gulp-a", 1)))

	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
	assert.NotEqual(t, first.Fingerprint(), third.Fingerprint())
	assert.Len(t, first.Fingerprint(), 16)
}

func TestPlugins_DottedTopLevelWins(t *testing.T) {
	p := domain.NewPlugins()
	require.NoError(t, p.Add(domain.NewResolvedBinding(top("a.b"), "gulp-a.b", "dotted")))

	v, err := p.Get("a.b")
	require.NoError(t, err)
	assert.Equal(t, "dotted", v)
}
