package domain_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugload/internal/core/domain"
)

func TestNormalize_Defaults(t *testing.T) {
	cfg := domain.Normalize(domain.Options{})

	assert.Equal(t, []string{"gulp-*", "gulp.*", "@*/gulp{-,.}*", "!gulp-load-plugins"}, cfg.Patterns)
	assert.Equal(t, []string{"dependencies", "devDependencies", "peerDependencies"}, cfg.Scopes)
	assert.Equal(t, "/^gulp[-.]/", cfg.Replace.String())
	assert.True(t, cfg.Camelize)
	assert.True(t, cfg.Lazy)
	assert.True(t, cfg.MaintainScope)
	assert.False(t, cfg.Debug)
	assert.NotNil(t, cfg.Rename)
	assert.NotNil(t, cfg.PostRequireTransforms)
	assert.Nil(t, cfg.RequireFn)
	assert.Nil(t, cfg.Source.Manifest)
}

func TestNormalize_Patterns(t *testing.T) {
	tests := []struct {
		name     string
		opts     domain.Options
		expected []string
	}{
		{
			name:     "override by default",
			opts:     domain.Options{Pattern: []string{"jack-*"}},
			expected: []string{"jack-*", "!gulp-load-plugins"},
		},
		{
			name:     "explicit override",
			opts:     domain.Options{Pattern: []string{"jack-*"}, OverridePattern: domain.Bool(true)},
			expected: []string{"jack-*", "!gulp-load-plugins"},
		},
		{
			name: "append to defaults",
			opts: domain.Options{Pattern: []string{"jack-*"}, OverridePattern: domain.Bool(false)},
			expected: []string{
				"gulp-*", "gulp.*", "@*/gulp{-,.}*", "jack-*", "!gulp-load-plugins",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.Normalize(tt.opts)
			assert.Equal(t, tt.expected, cfg.Patterns)
		})
	}
}

func TestNormalize_ReplaceRule(t *testing.T) {
	tests := []struct {
		name     string
		opts     domain.Options
		input    string
		expected string
	}{
		{"default strips gulp-", domain.Options{}, "gulp-foo-bar", "foo-bar"},
		{"default strips gulp.", domain.Options{}, "gulp.baz", "baz"},
		{"literal prefix", domain.Options{ReplaceString: "jack-"}, "jack-sparrow", "sparrow"},
		{"slash wrapped expression", domain.Options{ReplaceString: "/^jack[-.]/"}, "jack.sparrow", "sparrow"},
		{
			"compiled pattern wins",
			domain.Options{ReplaceString: "jack-", ReplacePattern: regexp.MustCompile(`^x-`)},
			"x-jack-y", "jack-y",
		},
		{"invalid expression taken literally", domain.Options{ReplaceString: "/(/"}, "/(/foo", "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.Normalize(tt.opts)
			assert.Equal(t, tt.expected, cfg.Replace.Apply(tt.input))
		})
	}
}

func TestNormalize_CopiesCallerState(t *testing.T) {
	rename := map[string]string{"gulp-foo": "bar"}
	scope := []string{"dependencies"}

	cfg := domain.Normalize(domain.Options{
		Rename:        rename,
		Scope:         scope,
		Camelize:      domain.Bool(false),
		Lazy:          domain.Bool(false),
		MaintainScope: domain.Bool(false),
		Debug:         true,
		ConfigPath:    "/tmp/package.json",
		Cwd:           "/tmp",
	})

	rename["gulp-foo"] = "changed"
	scope[0] = "devDependencies"

	assert.Equal(t, "bar", cfg.Rename["gulp-foo"])
	assert.Equal(t, []string{"dependencies"}, cfg.Scopes)
	assert.False(t, cfg.Camelize)
	assert.False(t, cfg.Lazy)
	assert.False(t, cfg.MaintainScope)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/package.json", cfg.Source.Path)
	assert.Equal(t, "/tmp", cfg.Source.Cwd)
}

func TestNormalize_Idempotent(t *testing.T) {
	opts := domain.Options{Pattern: []string{"jack-*"}, ReplaceString: "jack-"}

	first := domain.Normalize(opts)
	second := domain.Normalize(opts)

	require.Equal(t, first.Patterns, second.Patterns)
	assert.Equal(t, first.Replace.String(), second.Replace.String())
	assert.Equal(t, []string{"jack-*"}, opts.Pattern)
}
