// Package matcher selects candidate dependency names with ordered include and exclude globs.
package matcher

import (
	"strings"

	"github.com/gobwas/glob"
	"go.trai.ch/plugload/internal/core/domain"
	"go.trai.ch/zerr"
)

const negationPrefix = "!"

type rule struct {
	pattern string
	negate  bool
	glob    glob.Glob
}

// Matcher filters names through an ordered list of glob patterns.
// A pattern prefixed with "!" excludes names an earlier pattern included.
type Matcher struct {
	rules []rule
}

// New compiles patterns. "/" is the separator, so "*" stays inside a scope
// segment and "**" crosses it.
func New(patterns []string) (*Matcher, error) {
	rules := make([]rule, 0, len(patterns))
	for _, p := range patterns {
		r := rule{pattern: p}
		expr := p
		if strings.HasPrefix(p, negationPrefix) {
			r.negate = true
			expr = strings.TrimPrefix(p, negationPrefix)
		}

		g, err := glob.Compile(expr, '/')
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPattern, err.Error()), "pattern", p)
		}
		r.glob = g
		rules = append(rules, r)
	}
	return &Matcher{rules: rules}, nil
}

// Match reports whether name survives the pattern list: the last pattern
// that matches it decides, and a name no pattern matches is excluded.
func (m *Matcher) Match(name string) bool {
	included := false
	for _, r := range m.rules {
		if r.negate {
			if included && r.glob.Match(name) {
				included = false
			}
			continue
		}
		if !included && r.glob.Match(name) {
			included = true
		}
	}
	return included
}

// Filter returns the names that match, de-duplicated, in input order.
func (m *Matcher) Filter(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if m.Match(name) {
			out = append(out, name)
		}
	}
	return out
}

// Patterns returns the patterns the matcher was built from.
func (m *Matcher) Patterns() []string {
	out := make([]string, len(m.rules))
	for i, r := range m.rules {
		out[i] = r.pattern
	}
	return out
}
