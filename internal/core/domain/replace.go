package domain

import (
	"regexp"
	"strings"
)

// ReplaceRule strips a conventional prefix from a plugin name.
// It is either a literal prefix or a regular expression whose first match is removed.
type ReplaceRule struct {
	prefix string
	expr   *regexp.Regexp
}

// PrefixRule creates a ReplaceRule removing a literal prefix.
func PrefixRule(prefix string) ReplaceRule {
	return ReplaceRule{prefix: prefix}
}

// RegexpRule creates a ReplaceRule removing the first match of expr.
func RegexpRule(expr *regexp.Regexp) ReplaceRule {
	return ReplaceRule{expr: expr}
}

// ParseReplaceRule interprets s the way the options file does: a value
// wrapped in slashes (/^jack-/) is a regular expression, anything else a prefix.
func ParseReplaceRule(s string) (ReplaceRule, error) {
	if len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
		expr, err := regexp.Compile(s[1 : len(s)-1])
		if err != nil {
			return ReplaceRule{}, err
		}
		return RegexpRule(expr), nil
	}
	return PrefixRule(s), nil
}

// Apply removes the rule's match from name.
func (r ReplaceRule) Apply(name string) string {
	if r.expr != nil {
		loc := r.expr.FindStringIndex(name)
		if loc == nil {
			return name
		}
		return name[:loc[0]] + name[loc[1]:]
	}
	return strings.TrimPrefix(name, r.prefix)
}

// String returns the rule in options-file notation.
func (r ReplaceRule) String() string {
	if r.expr != nil {
		return "/" + r.expr.String() + "/"
	}
	return r.prefix
}
