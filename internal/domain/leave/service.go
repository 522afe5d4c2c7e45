package leave

import (
	"context"

	"github.com/opsdesk/workforce-backend-go/internal/domain/identity"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/queryscope"
)

type LeaveService interface {
	File(ctx context.Context, ident identity.Identity, req FileLeaveRequest) (LeaveRequestResponse, error)
	Get(ctx context.Context, ident identity.Identity, id string) (LeaveRequestResponse, error)
	ListPending(ctx context.Context, ident identity.Identity, q queryscope.Query) (ListLeaveRequestsResponse, error)
	ListHistory(ctx context.Context, ident identity.Identity, q queryscope.Query) (ListLeaveRequestsResponse, error)
	Approve(ctx context.Context, ident identity.Identity, id string) error
	Reject(ctx context.Context, ident identity.Identity, req RejectLeaveRequest) error
	Cancel(ctx context.Context, ident identity.Identity, req CancelLeaveRequest) error
}
