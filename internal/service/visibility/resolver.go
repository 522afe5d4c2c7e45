package visibility

import (
	"context"
	"fmt"

	"github.com/opsdesk/workforce-backend-go/internal/domain/identity"
)

// Kind selects which request collection a scope is being resolved for.
type Kind string

const (
	KindMeeting      Kind = "meeting"
	KindLeaveRequest Kind = "leave_request"
)

// Resolver computes the set of row owners a caller may see. All the
// role branching for listings lives here rather than at each call site.
//
// Team membership is looked up fresh on every call: manager/team
// assignment changes must take effect on the next request, so nothing
// here is cached.
type Resolver struct {
	identities identity.IdentityRepository
}

func NewResolver(identities identity.IdentityRepository) *Resolver {
	return &Resolver{identities: identities}
}

// ResolveActionableOwners scopes the views a caller acts on (pending
// queues). Managers see themselves plus their team; doers see exactly
// themselves; admins see everything. Unknown or client roles, and any
// manager whose scope resolves empty, fail closed to a match-zero-rows
// scope.
func (r *Resolver) ResolveActionableOwners(ctx context.Context, ident identity.Identity, kind Kind) (identity.OwnerScope, error) {
	switch ident.Role {
	case identity.RoleAdmin:
		return identity.ScopeAll(), nil

	case identity.RoleDoer:
		return selfScope(ident, kind), nil

	case identity.RoleManager:
		owners := newOwnerSet()
		owners.add(ident.Name)
		if kind == KindLeaveRequest {
			// Historical leave rows were written under either
			// identifier, so both must match.
			owners.add(ident.Username)
		}

		team, err := r.identities.ListTeam(ctx, ident.ID)
		if err != nil {
			return identity.OwnerScope{}, fmt.Errorf("failed to resolve team for manager %s: %w", ident.ID, err)
		}
		for _, member := range team {
			owners.add(member.Name)
			if kind == KindLeaveRequest {
				owners.add(member.Username)
			}
		}

		// An empty set stays empty: the scope then matches zero rows
		// rather than falling through to "no filter".
		return identity.ScopeOwners(owners.values()...), nil

	default:
		return identity.ScopeOwners(), nil
	}
}

// ResolveAuditOwners scopes the history views. Managers audit all
// request history even though they only act on their own team's pending
// items, so manager and admin both resolve to the unrestricted scope.
func (r *Resolver) ResolveAuditOwners(ctx context.Context, ident identity.Identity, kind Kind) (identity.OwnerScope, error) {
	switch ident.Role {
	case identity.RoleAdmin, identity.RoleManager:
		return identity.ScopeAll(), nil

	case identity.RoleDoer:
		return selfScope(ident, kind), nil

	default:
		return identity.ScopeOwners(), nil
	}
}

// selfScope is the doer's own-rows scope. Historical leave rows were
// written under either identifier, so the leave kind matches both.
func selfScope(ident identity.Identity, kind Kind) identity.OwnerScope {
	owners := newOwnerSet()
	owners.add(ident.Name)
	if kind == KindLeaveRequest {
		owners.add(ident.Username)
	}
	return identity.ScopeOwners(owners.values()...)
}

// ownerSet keeps insertion order while dropping empties and duplicates.
type ownerSet struct {
	seen   map[string]bool
	sorted []string
}

func newOwnerSet() *ownerSet {
	return &ownerSet{seen: make(map[string]bool)}
}

func (s *ownerSet) add(owner string) {
	if owner == "" || s.seen[owner] {
		return
	}
	s.seen[owner] = true
	s.sorted = append(s.sorted, owner)
}

func (s *ownerSet) values() []string {
	return s.sorted
}
