package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/workforce-backend-go/internal/domain/identity"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/database"
)

type identityRepositoryImpl struct {
	db *database.DB
}

func NewIdentityRepository(db *database.DB) identity.IdentityRepository {
	return &identityRepositoryImpl{db: db}
}

func (r *identityRepositoryImpl) GetByID(ctx context.Context, id string) (identity.Identity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.name, i.username, i.role, i.manager_id, i.delegates_to, i.created_at, i.updated_at
		FROM identities i
		WHERE i.id = $1
	`

	var ident identity.Identity
	var role string
	err := q.QueryRow(ctx, query, id).Scan(
		&ident.ID,
		&ident.Name,
		&ident.Username,
		&role,
		&ident.ManagerID,
		&ident.DelegatesTo,
		&ident.CreatedAt,
		&ident.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return identity.Identity{}, identity.ErrIdentityNotFound
		}
		return identity.Identity{}, err
	}

	ident.Role = identity.Role(role)
	return ident, nil
}

// ListTeam implements identity.IdentityRepository. Members managed by a
// client pseudo-user count toward the manager that pseudo-user
// delegates to, one hop only.
func (r *identityRepositoryImpl) ListTeam(ctx context.Context, managerID string) ([]identity.Identity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.name, i.username, i.role, i.manager_id, i.delegates_to, i.created_at, i.updated_at
		FROM identities i
		LEFT JOIN identities via ON i.manager_id = via.id AND via.delegates_to IS NOT NULL
		WHERE i.manager_id = $1
		   OR via.delegates_to = $1
		ORDER BY i.name ASC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var team []identity.Identity
	for rows.Next() {
		var ident identity.Identity
		var role string
		err := rows.Scan(
			&ident.ID,
			&ident.Name,
			&ident.Username,
			&role,
			&ident.ManagerID,
			&ident.DelegatesTo,
			&ident.CreatedAt,
			&ident.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		ident.Role = identity.Role(role)
		team = append(team, ident)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return team, nil
}
