package identity

import "time"

type Role string

const (
	RoleDoer    Role = "doer"    // Regular staff - sees own requests only
	RoleManager Role = "manager" // Can approve requests for their team
	RoleAdmin   Role = "admin"   // Full access
	RoleClient  Role = "client"  // Client account - anchors delegated pseudo-users
)

// Identity is the resolved caller: who they are plus the role that
// drives visibility. Rows may have been written under either Name or
// Username historically, so both identify the same person.
type Identity struct {
	ID       string
	Name     string
	Username string
	Role     Role

	// ManagerID links a team member to their manager. It is a
	// membership link only, never an ownership link.
	ManagerID *string

	// DelegatesTo is set on client pseudo-users and points at the real
	// manager. The team walk follows it exactly one hop.
	DelegatesTo *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin checks for unrestricted visibility
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanApprove checks if the identity can execute transitions
func (i *Identity) CanApprove() bool {
	return i.Role == RoleManager || i.Role == RoleAdmin
}

// OwnerScope is the set of row owners a caller may see. When All is
// false and Owners is empty the scope matches zero rows (fail closed).
type OwnerScope struct {
	All    bool
	Owners []string
}

// ScopeAll returns the unrestricted scope (no owner predicate).
func ScopeAll() OwnerScope {
	return OwnerScope{All: true}
}

// ScopeOwners returns a scope restricted to the given identifiers.
func ScopeOwners(owners ...string) OwnerScope {
	return OwnerScope{Owners: owners}
}
