package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/opsdesk/workforce-backend-go/internal/domain/meeting"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/database"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/queryscope"
)

const (
	meetingColumns = `m.id, m.doer_name, m.reason, m.duration_minutes,
		   m.preferred_date, m.preferred_time, m.scheduled_at,
		   m.status, m.comment, m.created_at, m.updated_at`
	meetingBase = "FROM meetings m"
)

type meetingRepositoryImpl struct {
	db *database.DB
}

func NewMeetingRepository(db *database.DB) meeting.MeetingRepository {
	return &meetingRepositoryImpl{db: db}
}

func (r *meetingRepositoryImpl) Create(ctx context.Context, m meeting.Meeting) (meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO meetings (
			id, doer_name, reason, duration_minutes,
			preferred_date, preferred_time,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5,
			$6, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		m.DoerName, m.Reason, m.DurationMinutes,
		m.PreferredDate, m.PreferredTime,
		m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		return meeting.Meeting{}, fmt.Errorf("failed to create meeting: %w", err)
	}

	return m, nil
}

func (r *meetingRepositoryImpl) GetByID(ctx context.Context, id string) (meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + meetingColumns + " " + meetingBase + " WHERE m.id = $1"

	m, err := scanMeeting(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return meeting.Meeting{}, meeting.ErrMeetingNotFound
		}
		return meeting.Meeting{}, err
	}
	return m, nil
}

// Count implements meeting.MeetingRepository. The scope it receives is
// the one List will run, so the two can never disagree on the filter.
func (r *meetingRepositoryImpl) Count(ctx context.Context, scope *queryscope.Scope) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query, args := scope.CountSQL(meetingBase)
	var total int64
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count meetings: %w", err)
	}
	return total, nil
}

func (r *meetingRepositoryImpl) List(ctx context.Context, scope *queryscope.Scope) ([]meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	query, args := scope.SelectSQL(meetingColumns, meetingBase)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer rows.Close()

	var meetings []meeting.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return meetings, nil
}

// UpdateStatus implements meeting.MeetingRepository. The status guard
// and the write happen in one statement, so a transition whose
// precondition no longer holds at write time changes nothing. The
// write and the conflict read run in one transaction so the conflict
// is classified against the same snapshot the write saw.
func (r *meetingRepositoryImpl) UpdateStatus(ctx context.Context, id string, from []meeting.Status, to meeting.Status) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			UPDATE meetings
			SET status = $1, updated_at = NOW()
			WHERE id = $2
			  AND (status = ANY($3) OR ((status IS NULL OR status = '') AND 'Pending' = ANY($3)))
		`

		commandTag, err := q.Exec(ctx, query, to, id, statusStrings(from))
		if err != nil {
			return fmt.Errorf("failed to update status for meeting %s: %w", id, err)
		}
		if commandTag.RowsAffected() != 1 {
			return r.transitionConflict(ctx, id)
		}
		return nil
	})
}

// Schedule implements meeting.MeetingRepository. Status, scheduled_at,
// comment and updated_at are written together or not at all; a
// reschedule replaces the prior comment rather than appending to it.
func (r *meetingRepositoryImpl) Schedule(ctx context.Context, id string, from []meeting.Status, scheduledAt string, comment *string) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			UPDATE meetings
			SET status = $1, scheduled_at = $2, comment = $3, updated_at = NOW()
			WHERE id = $4
			  AND (status = ANY($5) OR ((status IS NULL OR status = '') AND 'Pending' = ANY($5)))
		`

		commandTag, err := q.Exec(ctx, query, meeting.StatusScheduled, scheduledAt, comment, id, statusStrings(from))
		if err != nil {
			return fmt.Errorf("failed to schedule meeting %s: %w", id, err)
		}
		if commandTag.RowsAffected() != 1 {
			return r.transitionConflict(ctx, id)
		}
		return nil
	})
}

// transitionConflict distinguishes a missing row from a stale
// precondition after a zero-row compare-and-set.
func (r *meetingRepositoryImpl) transitionConflict(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return meeting.ErrMeetingAlreadyProcessed
}

func statusStrings(statuses []meeting.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

func scanMeeting(row pgx.Row) (meeting.Meeting, error) {
	var m meeting.Meeting
	var status *string
	err := row.Scan(
		&m.ID,
		&m.DoerName,
		&m.Reason,
		&m.DurationMinutes,
		&m.PreferredDate,
		&m.PreferredTime,
		&m.ScheduledAt,
		&status,
		&m.Comment,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return meeting.Meeting{}, err
	}
	if status != nil {
		m.Status = meeting.Status(*status)
	}
	return m, nil
}
