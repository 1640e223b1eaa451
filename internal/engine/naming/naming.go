// Package naming derives the exposed property path of a matched dependency.
package naming

import (
	"regexp"
	"strings"

	"go.trai.ch/plugload/internal/core/domain"
)

var dashWord = regexp.MustCompile(`-(\w)`)

// Camelize upper-cases every word character that follows a dash and drops the dash.
func Camelize(s string) string {
	return dashWord.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// SplitScope splits "@scope/local" into its scope and local segment.
// Unscoped names return an empty scope.
func SplitScope(raw string) (scope, local string) {
	if !strings.HasPrefix(raw, "@") {
		return "", raw
	}
	scope, local, found := strings.Cut(raw[1:], "/")
	if !found || scope == "" || local == "" {
		return "", raw
	}
	return scope, local
}

// Transform computes where raw is exposed under cfg.
//
// Rename entries win verbatim, first for the full raw name and then, for
// scoped packages, for the local segment. Otherwise cfg.RenameFn names the
// local segment, or the replace rule is stripped and the rest camel-cased.
// Without MaintainScope the scope is dropped and the plugin binds at top level.
func Transform(raw string, cfg *domain.Config) domain.PropertyPath {
	scope, local := SplitScope(raw)

	path := domain.PropertyPath{Name: exposedName(raw, local, cfg)}
	if scope != "" && cfg.MaintainScope {
		path.Namespace = scope
	}
	return path
}

func exposedName(raw, local string, cfg *domain.Config) string {
	if name, ok := cfg.Rename[raw]; ok && name != "" {
		return name
	}
	if local != raw {
		if name, ok := cfg.Rename[local]; ok && name != "" {
			return name
		}
	}
	if cfg.RenameFn != nil {
		return cfg.RenameFn(local)
	}

	name := cfg.Replace.Apply(local)
	if cfg.Camelize {
		name = Camelize(name)
	}
	return name
}
