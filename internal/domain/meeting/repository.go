package meeting

import (
	"context"

	"github.com/opsdesk/workforce-backend-go/internal/pkg/queryscope"
)

// MeetingRepository - interface for the meetings table. Count and List
// take the same Scope so both run the identical predicate.
//
// UpdateStatus and Schedule are compare-and-set: the row is written only
// while its current status is one of from, in a single statement, and
// ErrMeetingAlreadyProcessed is returned when the precondition no longer
// holds at write time.
type MeetingRepository interface {
	Create(ctx context.Context, m Meeting) (Meeting, error)
	GetByID(ctx context.Context, id string) (Meeting, error)
	Count(ctx context.Context, scope *queryscope.Scope) (int64, error)
	List(ctx context.Context, scope *queryscope.Scope) ([]Meeting, error)
	UpdateStatus(ctx context.Context, id string, from []Status, to Status) error
	Schedule(ctx context.Context, id string, from []Status, scheduledAt string, comment *string) error
}
