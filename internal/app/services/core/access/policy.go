// Package access decides whether a session satisfies an access requirement.
// Everything here is pure and safe for concurrent use.
package access

import "medical-portal/internal/app/models"

type Decision int

const (
	Allow Decision = iota
	// DenyUnauthenticated means no session was present.
	DenyUnauthenticated
	// DenyUnauthorized means a session exists but lacks the admin role or
	// the required permission.
	DenyUnauthorized
)

func (d Decision) Allowed() bool {
	return d == Allow
}

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "deny_unauthenticated"
	case DenyUnauthorized:
		return "deny_unauthorized"
	default:
		return "unknown"
	}
}

// Evaluate applies the checks in a fixed order: auth, admin, permission.
// Admin bypass only covers the permission check.
func Evaluate(session *models.Session, requirement models.AccessRequirement) Decision {
	if requirement.RequireAuth && session == nil {
		return DenyUnauthenticated
	}

	if requirement.RequireAdmin && !IsAdmin(session) {
		return deny(session)
	}

	if requirement.RequiredPermission != "" && !HasPermission(session, requirement.RequiredPermission) {
		return deny(session)
	}

	return Allow
}

// HasPermission checks the active flag first, then the admin bypass, then
// membership.
func HasPermission(session *models.Session, permission string) bool {
	if session == nil || !session.IsActive {
		return false
	}
	if session.Role == models.RoleAdmin {
		return true
	}
	return session.Permissions.Has(permission)
}

// IsAdmin looks at the role only. An inactive admin is still an admin here.
func IsAdmin(session *models.Session) bool {
	return session != nil && session.Role == models.RoleAdmin
}

func deny(session *models.Session) Decision {
	if session == nil {
		return DenyUnauthenticated
	}
	return DenyUnauthorized
}
