package middleware

import (
	"strings"

	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

// RequirementKind enumerates what a matched rule demands of a request.
type RequirementKind int

const (
	KindPermitAll RequirementKind = iota
	KindDenyAll
	KindRequireAuthenticated
	KindRequireRole
)

// Requirement is the access demand attached to a path pattern.
type Requirement struct {
	Kind RequirementKind
	Role entity.UserRole // set only for KindRequireRole
}

func PermitAll() Requirement            { return Requirement{Kind: KindPermitAll} }
func DenyAll() Requirement              { return Requirement{Kind: KindDenyAll} }
func RequireAuthenticated() Requirement { return Requirement{Kind: KindRequireAuthenticated} }
func RequireRole(role entity.UserRole) Requirement {
	return Requirement{Kind: KindRequireRole, Role: role}
}

// Rule pairs a path pattern with a requirement. Patterns are either
// exact paths or a trailing-wildcard prefix form: "/public/**" matches
// any path beginning with "/public/".
type Rule struct {
	Pattern     string
	Requirement Requirement
}

// Policy is an ordered, immutable rule table. Rules are evaluated in
// declaration order and the first matching pattern governs; a request
// matching no rule falls back to requiring authentication, never to
// permit.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from rules in declaration order. The rule
// table is fixed at startup; there is no per-request mutation.
func NewPolicy(rules ...Rule) *Policy {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Policy{rules: copied}
}

// Evaluate returns the requirement governing the request path.
func (p *Policy) Evaluate(path string) Requirement {
	for _, rule := range p.rules {
		if matchPattern(rule.Pattern, path) {
			return rule.Requirement
		}
	}
	return RequireAuthenticated()
}

func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "**"); ok {
		return strings.HasPrefix(path, prefix)
	}
	return pattern == path
}
