package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/workforce-backend-go/internal/domain/leave"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/database"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/queryscope"
)

const (
	leaveColumns = `l.id, l.unique_service_no, l.employee_name, l.leave_type,
		   l.duration, l.start_date, l.end_date, l.manager_name,
		   l.reason, l.status, l.comment, l.created_at, l.updated_at`
	leaveBase = "FROM leave_requests l"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_name, leave_type, duration,
			start_date, end_date, manager_name, reason,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6, $7,
			$8, NOW(), NOW()
		) RETURNING id, unique_service_no, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lr.EmployeeName, lr.LeaveType, lr.Duration,
		lr.StartDate, lr.EndDate, lr.ManagerName, lr.Reason,
		lr.Status,
	).Scan(&lr.ID, &lr.UniqueServiceNo, &lr.CreatedAt, &lr.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return lr, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveColumns + " " + leaveBase + " WHERE l.id = $1"

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) Count(ctx context.Context, scope *queryscope.Scope) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query, args := scope.CountSQL(leaveBase)
	var total int64
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count leave requests: %w", err)
	}
	return total, nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, scope *queryscope.Scope) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query, args := scope.SelectSQL(leaveColumns, leaveBase)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

// UpdateStatus implements leave.LeaveRequestRepository. A nil comment
// keeps whatever comment the row already carries. The write and the
// conflict read run in one transaction so the conflict is classified
// against the same snapshot the write saw.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, from []leave.Status, to leave.Status, comment *string) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			UPDATE leave_requests
			SET status = $1, comment = COALESCE($2, comment), updated_at = NOW()
			WHERE id = $3 AND (status = ANY($4) OR (status IS NULL AND '' = ANY($4)))
		`

		commandTag, err := q.Exec(ctx, query, to, comment, id, leaveStatusStrings(from))
		if err != nil {
			return fmt.Errorf("failed to update status for leave request %s: %w", id, err)
		}
		if commandTag.RowsAffected() != 1 {
			if _, err := r.GetByID(ctx, id); err != nil {
				return err
			}
			return leave.ErrLeaveRequestAlreadyProcessed
		}
		return nil
	})
}

func leaveStatusStrings(statuses []leave.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	var status *string
	err := row.Scan(
		&lr.ID,
		&lr.UniqueServiceNo,
		&lr.EmployeeName,
		&lr.LeaveType,
		&lr.Duration,
		&lr.StartDate,
		&lr.EndDate,
		&lr.ManagerName,
		&lr.Reason,
		&status,
		&lr.Comment,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if status != nil {
		lr.Status = leave.Status(*status)
	}
	return lr, nil
}
