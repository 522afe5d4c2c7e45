package leave

import (
	"context"

	"github.com/opsdesk/workforce-backend-go/internal/pkg/queryscope"
)

// LeaveRequestRepository - interface for the leave_requests table.
// Count and List take the same Scope so both run the identical
// predicate.
//
// UpdateStatus is compare-and-set: the row is written only while its
// current status is one of from, in a single statement, and
// ErrLeaveRequestAlreadyProcessed is returned when the precondition no
// longer holds at write time.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Count(ctx context.Context, scope *queryscope.Scope) (int64, error)
	List(ctx context.Context, scope *queryscope.Scope) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, from []Status, to Status, comment *string) error
}
