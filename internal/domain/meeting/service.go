package meeting

import (
	"context"

	"github.com/opsdesk/workforce-backend-go/internal/domain/identity"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/queryscope"
)

type MeetingService interface {
	Book(ctx context.Context, ident identity.Identity, req BookMeetingRequest) (MeetingResponse, error)
	Get(ctx context.Context, ident identity.Identity, id string) (MeetingResponse, error)
	ListPending(ctx context.Context, ident identity.Identity, q queryscope.Query) (ListMeetingsResponse, error)
	ListHistory(ctx context.Context, ident identity.Identity, q queryscope.Query) (ListMeetingsResponse, error)
	Approve(ctx context.Context, ident identity.Identity, id string) error
	Schedule(ctx context.Context, ident identity.Identity, req ScheduleMeetingRequest) error
	Complete(ctx context.Context, ident identity.Identity, id string) error
}
