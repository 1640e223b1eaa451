package domain

import (
	"maps"
	"regexp"
	"slices"
)

// ResolveFunc resolves a raw package name to the module value it exports.
type ResolveFunc func(name string) (any, error)

// TransformFunc post-processes a resolved module value before it is exposed.
type TransformFunc func(value any) any

// Options is the loosely specified input of one load. Every field is optional;
// Normalize fills in the defaults.
type Options struct {
	// Pattern lists include and !exclude globs matched against dependency names.
	Pattern []string
	// OverridePattern replaces the default patterns when true (the default)
	// and appends Pattern to them when false.
	OverridePattern *bool

	// Config is an in-memory manifest. It takes precedence over ConfigPath.
	Config *Manifest
	// ConfigPath is the manifest file to read instead of searching upward.
	ConfigPath string
	// Cwd is where the upward manifest search starts. Defaults to the process working directory.
	Cwd string

	// Scope lists the manifest sections to scan.
	Scope []string

	// ReplaceString is stripped from the start of each name before casing.
	// "/expr/" is treated as a regular expression.
	ReplaceString string
	// ReplacePattern takes precedence over ReplaceString.
	ReplacePattern *regexp.Regexp

	Camelize      *bool
	Lazy          *bool
	MaintainScope *bool

	// Rename maps raw package names to exposed names verbatim.
	Rename map[string]string
	// RenameFn replaces the built-in naming rule.
	RenameFn func(name string) string
	// PostRequireTransforms maps exposed names to a transform applied once after resolution.
	// A dotted key ("myco.testPlugin") targets one scoped plugin; a bare local
	// name ("testPlugin") matches that name in any namespace. The dotted key wins.
	PostRequireTransforms map[string]TransformFunc

	// RequireFn overrides the module resolution capability.
	RequireFn ResolveFunc

	// Debug emits diagnostic trace lines.
	Debug bool
}

// Config is the fully resolved, read-only configuration of one load.
type Config struct {
	Patterns      []string
	Scopes        []string
	Replace       ReplaceRule
	Camelize      bool
	Lazy          bool
	MaintainScope bool
	Debug         bool

	Rename                map[string]string
	RenameFn              func(name string) string
	PostRequireTransforms map[string]TransformFunc
	RequireFn             ResolveFunc

	Source ManifestSource
}

// Bool returns a pointer to b, for the tri-state option fields.
func Bool(b bool) *bool {
	return &b
}

// Normalize resolves opts into a Config. It never fails: every field has a default.
// The self-exclusion pattern is always appended last.
func Normalize(opts Options) Config {
	cfg := Config{
		Patterns:      resolvePatterns(opts.Pattern, boolOr(opts.OverridePattern, true)),
		Scopes:        DefaultScopes(),
		Replace:       resolveReplaceRule(opts.ReplaceString, opts.ReplacePattern),
		Camelize:      boolOr(opts.Camelize, true),
		Lazy:          boolOr(opts.Lazy, true),
		MaintainScope: boolOr(opts.MaintainScope, true),
		Debug:         opts.Debug,

		Rename:                maps.Clone(opts.Rename),
		RenameFn:              opts.RenameFn,
		PostRequireTransforms: maps.Clone(opts.PostRequireTransforms),
		RequireFn:             opts.RequireFn,

		Source: ManifestSource{
			Manifest: opts.Config,
			Path:     opts.ConfigPath,
			Cwd:      opts.Cwd,
		},
	}

	if len(opts.Scope) > 0 {
		cfg.Scopes = slices.Clone(opts.Scope)
	}
	if cfg.Rename == nil {
		cfg.Rename = make(map[string]string)
	}
	if cfg.PostRequireTransforms == nil {
		cfg.PostRequireTransforms = make(map[string]TransformFunc)
	}

	return cfg
}

func resolvePatterns(pattern []string, override bool) []string {
	var patterns []string
	switch {
	case len(pattern) == 0:
		patterns = DefaultPatterns()
	case override:
		patterns = slices.Clone(pattern)
	default:
		patterns = append(DefaultPatterns(), pattern...)
	}
	return append(patterns, "!"+SelfPackageName)
}

func resolveReplaceRule(s string, expr *regexp.Regexp) ReplaceRule {
	if expr != nil {
		return RegexpRule(expr)
	}
	if s == "" {
		return RegexpRule(regexp.MustCompile(DefaultReplaceExpr))
	}
	rule, err := ParseReplaceRule(s)
	if err != nil {
		// Not a valid expression, so take it literally.
		return PrefixRule(s)
	}
	return rule
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
