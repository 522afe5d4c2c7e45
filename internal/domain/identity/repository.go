package identity

import "context"

// IdentityRepository - interface for the identities table
type IdentityRepository interface {
	GetByID(ctx context.Context, id string) (Identity, error)
	// ListTeam returns every identity managed by managerID, including
	// members attached through a client pseudo-user that delegates to
	// that manager. Results must be computed fresh on every call.
	ListTeam(ctx context.Context, managerID string) ([]Identity, error)
}
