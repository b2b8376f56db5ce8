// Package authz is the single authorization gate consulted by every
// protected operation. It classifies a session against a declarative
// requirement; it never renders, redirects, or touches the request.
package authz

import "github.com/launchhub/business-portal/internal/core/domain"

// Decision is the outcome of an authorization check.
type Decision int

const (
	Allow Decision = iota
	// DenyUnauthenticated means no valid session was presented.
	DenyUnauthenticated
	// DenyForbidden means the session is valid but its role or flags do
	// not satisfy the requirement.
	DenyForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "unauthenticated"
	case DenyForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Requirement is a declarative access rule attached to an operation.
// Construct one with MinRole, RoleWithFlag, or AnyOf.
type Requirement struct {
	minRole domain.Role
	flag    domain.Flag
	anyOf   []Requirement
}

// Authenticated requires any valid session, regardless of role.
func Authenticated() Requirement {
	return Requirement{minRole: domain.RoleExternal}
}

// MinRole requires a role of at least r in the external < internal < admin
// ordering.
func MinRole(r domain.Role) Requirement {
	return Requirement{minRole: r}
}

// RoleWithFlag requires a role of at least r plus the given permission flag.
func RoleWithFlag(r domain.Role, f domain.Flag) Requirement {
	return Requirement{minRole: r, flag: f}
}

// AnyOf is satisfied when any one of the alternatives is.
func AnyOf(reqs ...Requirement) Requirement {
	return Requirement{anyOf: reqs}
}

// Authorize classifies the session against the requirement.
//
// Admin satisfies every requirement: role authority is monotonic and admin
// is a strict superset of the other roles. Display concerns such as the
// admin "internal view" toggle are invisible here; only the session's role
// and flags feed into the decision.
func Authorize(s *domain.Session, req Requirement) Decision {
	if s == nil {
		return DenyUnauthenticated
	}
	if s.Role == domain.RoleAdmin {
		return Allow
	}
	if req.satisfiedBy(s) {
		return Allow
	}
	return DenyForbidden
}

func (r Requirement) satisfiedBy(s *domain.Session) bool {
	if len(r.anyOf) > 0 {
		for _, alt := range r.anyOf {
			if alt.satisfiedBy(s) {
				return true
			}
		}
		return false
	}
	if !s.Role.AtLeast(r.minRole) {
		return false
	}
	if r.flag != "" && !s.HasFlag(r.flag) {
		return false
	}
	return true
}
