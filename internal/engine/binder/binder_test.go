package binder_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugload/internal/core/domain"
	"go.trai.ch/plugload/internal/core/ports/mocks"
	"go.trai.ch/plugload/internal/engine/binder"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type countingResolver struct {
	calls  map[string]int
	values map[string]any
	err    error
}

func newCountingResolver(values map[string]any) *countingResolver {
	return &countingResolver{calls: make(map[string]int), values: values}
}

func (r *countingResolver) Resolve(name string) (any, error) {
	r.calls[name]++
	if r.err != nil {
		return nil, r.err
	}
	return r.values[name], nil
}

func TestBinder_LazyDefersResolution(t *testing.T) {
	cfg := domain.Normalize(domain.Options{})
	res := newCountingResolver(map[string]any{"gulp-foo": "foo-module"})
	plugins := domain.NewPlugins()

	b := binder.New(&cfg, res.Resolve, nil)
	require.NoError(t, b.Bind(plugins, "gulp-foo", domain.PropertyPath{Name: "foo"}))

	assert.Zero(t, res.calls["gulp-foo"])

	v, err := plugins.Get("foo")
	require.NoError(t, err)
	assert.Equal(t, "foo-module", v)

	_, err = plugins.Get("foo")
	require.NoError(t, err)
	assert.Equal(t, 1, res.calls["gulp-foo"])
}

func TestBinder_EagerResolvesImmediately(t *testing.T) {
	cfg := domain.Normalize(domain.Options{Lazy: domain.Bool(false)})
	res := newCountingResolver(map[string]any{"gulp-foo": "foo-module"})
	plugins := domain.NewPlugins()

	b := binder.New(&cfg, res.Resolve, nil)
	require.NoError(t, b.Bind(plugins, "gulp-foo", domain.PropertyPath{Name: "foo"}))

	assert.Equal(t, 1, res.calls["gulp-foo"])
	binding, ok := plugins.Lookup("foo")
	require.True(t, ok)
	assert.Equal(t, domain.StateResolved, binding.State())
	assert.Equal(t, "foo-module", plugins.MustGet("foo"))
	assert.Equal(t, 1, res.calls["gulp-foo"])
}

func TestBinder_EagerPropagatesResolverError(t *testing.T) {
	errBoom := errors.New("boom")
	cfg := domain.Normalize(domain.Options{Lazy: domain.Bool(false)})
	res := newCountingResolver(nil)
	res.err = errBoom
	plugins := domain.NewPlugins()

	err := binder.New(&cfg, res.Resolve, nil).Bind(plugins, "gulp-foo", domain.PropertyPath{Name: "foo"})
	assert.Same(t, errBoom, err)
	assert.Empty(t, plugins.Names())
}

func TestBinder_PostRequireTransformAppliedOnce(t *testing.T) {
	for _, lazy := range []bool{true, false} {
		t.Run(map[bool]string{true: "lazy", false: "eager"}[lazy], func(t *testing.T) {
			transforms := 0
			cfg := domain.Normalize(domain.Options{
				Lazy: domain.Bool(lazy),
				PostRequireTransforms: map[string]domain.TransformFunc{
					"foo": func(v any) any {
						transforms++
						return v.(string) + "+transformed"
					},
				},
			})
			res := newCountingResolver(map[string]any{"gulp-foo": "foo", "gulp-bar": "bar"})
			plugins := domain.NewPlugins()
			b := binder.New(&cfg, res.Resolve, nil)

			require.NoError(t, b.Bind(plugins, "gulp-foo", domain.PropertyPath{Name: "foo"}))
			require.NoError(t, b.Bind(plugins, "gulp-bar", domain.PropertyPath{Name: "bar"}))

			assert.Equal(t, "foo+transformed", plugins.MustGet("foo"))
			assert.Equal(t, "foo+transformed", plugins.MustGet("foo"))
			assert.Equal(t, "bar", plugins.MustGet("bar"))
			assert.Equal(t, 1, transforms)
		})
	}
}

func TestBinder_PostRequireTransformByNamespace(t *testing.T) {
	tag := func(label string) domain.TransformFunc {
		return func(v any) any { return v.(string) + "+" + label }
	}
	cfg := domain.Normalize(domain.Options{
		PostRequireTransforms: map[string]domain.TransformFunc{
			"a.x": tag("scoped"),
			"x":   tag("local"),
		},
	})
	res := newCountingResolver(map[string]any{"@a/gulp-x": "ax", "@b/gulp-x": "bx", "gulp-x": "x"})
	plugins := domain.NewPlugins()
	b := binder.New(&cfg, res.Resolve, nil)

	require.NoError(t, b.Bind(plugins, "@a/gulp-x", domain.PropertyPath{Namespace: "a", Name: "x"}))
	require.NoError(t, b.Bind(plugins, "@b/gulp-x", domain.PropertyPath{Namespace: "b", Name: "x"}))
	require.NoError(t, b.Bind(plugins, "gulp-x", domain.PropertyPath{Name: "x"}))

	assert.Equal(t, "ax+scoped", plugins.MustGet("a.x"))
	assert.Equal(t, "bx+local", plugins.MustGet("b.x"))
	assert.Equal(t, "x+local", plugins.MustGet("x"))
}

func TestBinder_ResolvedFunctionKeepsIdentity(t *testing.T) {
	fn := func() string { return "insert" }
	cfg := domain.Normalize(domain.Options{})
	res := newCountingResolver(map[string]any{"gulp-insert": fn})
	plugins := domain.NewPlugins()

	require.NoError(t, binder.New(&cfg, res.Resolve, nil).
		Bind(plugins, "gulp-insert", domain.PropertyPath{Name: "insert"}))

	v := plugins.MustGet("insert")
	got, ok := v.(func() string)
	require.True(t, ok)
	assert.Equal(t, reflect.ValueOf(fn).Pointer(), reflect.ValueOf(got).Pointer())
	assert.Equal(t, "insert", got())
}

func TestBinder_DuplicateInManifest(t *testing.T) {
	cfg := domain.Normalize(domain.Options{})
	res := newCountingResolver(nil)
	plugins := domain.NewPlugins()
	b := binder.New(&cfg, res.Resolve, nil)

	require.NoError(t, b.Bind(plugins, "bar", domain.PropertyPath{Name: "bar"}))
	err := b.Bind(plugins, "gulp-bar", domain.PropertyPath{Name: "bar"})

	require.ErrorIs(t, err, domain.ErrDuplicateBinding)
	assert.Contains(t, err.Error(), "repeated dependencies in your manifest")
	assert.Contains(t, err.Error(), `"bar"`)
	assert.Contains(t, err.Error(), `"gulp-bar"`)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, "bar", meta["exposed_name"])
	assert.Equal(t, "gulp-bar", meta["raw_name"])
	assert.Equal(t, "bar", meta["existing_raw_name"])
	assert.Equal(t, "", meta["namespace"])
}

func TestBinder_DuplicateAcrossScopes(t *testing.T) {
	cfg := domain.Normalize(domain.Options{MaintainScope: domain.Bool(false)})
	res := newCountingResolver(nil)
	plugins := domain.NewPlugins()
	b := binder.New(&cfg, res.Resolve, nil)

	require.NoError(t, b.Bind(plugins, "gulp-foo", domain.PropertyPath{Name: "foo"}))
	err := b.Bind(plugins, "@myco/gulp-foo", domain.PropertyPath{Name: "foo"})

	require.ErrorIs(t, err, domain.ErrDuplicateBinding)
	assert.Contains(t, err.Error(), "repeated a dependency in another scope")
}

func TestBinder_NamespaceCollidesWithTopLevel(t *testing.T) {
	cfg := domain.Normalize(domain.Options{})
	res := newCountingResolver(nil)
	plugins := domain.NewPlugins()
	b := binder.New(&cfg, res.Resolve, nil)

	require.NoError(t, b.Bind(plugins, "gulp-myco", domain.PropertyPath{Name: "myco"}))
	err := b.Bind(plugins, "@myco/gulp-foo", domain.PropertyPath{Namespace: "myco", Name: "foo"})

	require.ErrorIs(t, err, domain.ErrDuplicateBinding)
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "myco", zErr.Metadata()["namespace"])
	assert.Equal(t, "gulp-myco", zErr.Metadata()["existing_raw_name"])
}

func TestBinder_DebugTrace(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cfg := domain.Normalize(domain.Options{Debug: true})
	res := newCountingResolver(map[string]any{"gulp-foo": 1})
	plugins := domain.NewPlugins()

	gomock.InOrder(
		mockLogger.EXPECT().Debug("lazy loading plugin", "plugin", "gulp-foo", "path", "foo"),
		mockLogger.EXPECT().Debug("requiring plugin", "plugin", "gulp-foo", "path", "foo"),
	)

	b := binder.New(&cfg, res.Resolve, mockLogger)
	require.NoError(t, b.Bind(plugins, "gulp-foo", domain.PropertyPath{Name: "foo"}))
	_, err := plugins.Get("foo")
	require.NoError(t, err)
}

func TestBinder_NoTraceWithoutDebug(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cfg := domain.Normalize(domain.Options{Lazy: domain.Bool(false)})
	res := newCountingResolver(map[string]any{"gulp-foo": 1})

	b := binder.New(&cfg, res.Resolve, mockLogger)
	require.NoError(t, b.Bind(domain.NewPlugins(), "gulp-foo", domain.PropertyPath{Name: "foo"}))
}
