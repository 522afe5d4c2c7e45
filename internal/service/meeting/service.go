package meeting

import (
	"context"
	"fmt"

	"github.com/opsdesk/workforce-backend-go/internal/domain/identity"
	"github.com/opsdesk/workforce-backend-go/internal/domain/meeting"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/queryscope"
	"github.com/opsdesk/workforce-backend-go/internal/service/visibility"
)

// pendingExpr matches the three representations of a not-yet-decided
// row. Listings and status filters both go through it so "Pending"
// means the same set of rows everywhere.
const (
	pendingExpr    = "(m.status = 'Pending' OR m.status IS NULL OR m.status = '')"
	notPendingExpr = "(m.status IS NOT NULL AND m.status <> '' AND m.status <> 'Pending')"
)

// listingDefinition declares the allow-lists for meeting listings.
// Caller-supplied sort and filter keys resolve against these maps and
// nothing else reaches the SQL text.
func listingDefinition() queryscope.Definition {
	return queryscope.Definition{
		Filters: map[string]queryscope.Field{
			"filter_employee": {Column: "m.doer_name", Op: "ILIKE"},
			"filter_status":   {Column: "m.status", Op: "="},
		},
		SortColumns: map[string]string{
			"doer_name":        "m.doer_name",
			"reason":           "m.reason",
			"duration_minutes": "m.duration_minutes",
			"preferred_date":   "m.preferred_date",
			"status":           "m.status",
		},
		DefaultSort: "doer_name",
		DefaultDir:  queryscope.Asc,
	}
}

type Service struct {
	meeting.MeetingRepository
	resolver *visibility.Resolver
}

func NewService(meetingRepository meeting.MeetingRepository, resolver *visibility.Resolver) *Service {
	return &Service{
		MeetingRepository: meetingRepository,
		resolver:          resolver,
	}
}

func (s *Service) Book(ctx context.Context, ident identity.Identity, req meeting.BookMeetingRequest) (meeting.MeetingResponse, error) {
	if err := req.Validate(); err != nil {
		return meeting.MeetingResponse{}, err
	}

	owner := ident.Name
	if ident.IsAdmin() && req.OwnerName != "" {
		owner = req.OwnerName
	}

	m := meeting.Meeting{
		DoerName:        owner,
		Reason:          req.Reason,
		DurationMinutes: req.DurationMinutes,
		PreferredDate:   req.PreferredDate,
		PreferredTime:   req.PreferredTime,
		Status:          meeting.StatusPending,
	}

	created, err := s.MeetingRepository.Create(ctx, m)
	if err != nil {
		return meeting.MeetingResponse{}, fmt.Errorf("failed to book meeting: %w", err)
	}

	return toMeetingResponse(created), nil
}

// Get returns a single meeting the caller is allowed to see. A meeting
// outside the caller's scope reads as not found, the same as a missing
// id, so callers cannot probe for existence.
func (s *Service) Get(ctx context.Context, ident identity.Identity, id string) (meeting.MeetingResponse, error) {
	m, err := s.MeetingRepository.GetByID(ctx, id)
	if err != nil {
		return meeting.MeetingResponse{}, err
	}

	scope, err := s.resolver.ResolveAuditOwners(ctx, ident, visibility.KindMeeting)
	if err != nil {
		return meeting.MeetingResponse{}, err
	}
	if !scope.All && !containsOwner(scope.Owners, m.DoerName) {
		return meeting.MeetingResponse{}, meeting.ErrMeetingNotFound
	}

	return toMeetingResponse(m), nil
}

// ListPending is the actionable queue: managers see their team, doers
// see themselves, admins see everything.
func (s *Service) ListPending(ctx context.Context, ident identity.Identity, q queryscope.Query) (meeting.ListMeetingsResponse, error) {
	scope, err := s.resolver.ResolveActionableOwners(ctx, ident, visibility.KindMeeting)
	if err != nil {
		return meeting.ListMeetingsResponse{}, err
	}
	return s.list(ctx, scope, q, pendingExpr)
}

// ListHistory is the audit view: processed rows only, with managers and
// admins unrestricted.
func (s *Service) ListHistory(ctx context.Context, ident identity.Identity, q queryscope.Query) (meeting.ListMeetingsResponse, error) {
	scope, err := s.resolver.ResolveAuditOwners(ctx, ident, visibility.KindMeeting)
	if err != nil {
		return meeting.ListMeetingsResponse{}, err
	}
	return s.list(ctx, scope, q, notPendingExpr)
}

func (s *Service) list(ctx context.Context, owners identity.OwnerScope, q queryscope.Query, statusExpr string) (meeting.ListMeetingsResponse, error) {
	scope := buildScope(q)
	scope.Where(statusExpr)
	if !owners.All {
		scope.WhereOwners(owners.Owners, "m.doer_name")
	}

	total, err := s.MeetingRepository.Count(ctx, scope)
	if err != nil {
		return meeting.ListMeetingsResponse{}, err
	}

	scope.ClampPage(total)

	meetings, err := s.MeetingRepository.List(ctx, scope)
	if err != nil {
		return meeting.ListMeetingsResponse{}, err
	}

	responses := make([]meeting.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		responses = append(responses, toMeetingResponse(m))
	}

	return meeting.ListMeetingsResponse{
		TotalCount: total,
		Page:       scope.Page(),
		Limit:      scope.PageSize(),
		TotalPages: queryscope.TotalPages(total, scope.PageSize()),
		Meetings:   responses,
	}, nil
}

// buildScope resolves the caller query. A filter_status of "Pending" is
// rewritten to the pending predicate so empty-status rows match it too.
func buildScope(q queryscope.Query) *queryscope.Scope {
	pendingFilter := false
	if q.Filters["filter_status"] == string(meeting.StatusPending) {
		filters := make(map[string]string, len(q.Filters))
		for key, value := range q.Filters {
			if key == "filter_status" {
				continue
			}
			filters[key] = value
		}
		q.Filters = filters
		pendingFilter = true
	}

	scope := listingDefinition().Build(q)
	if pendingFilter {
		scope.Where(pendingExpr)
	}
	return scope
}

func (s *Service) Approve(ctx context.Context, ident identity.Identity, id string) error {
	if !ident.CanApprove() {
		return meeting.ErrUnauthorized
	}
	return s.MeetingRepository.UpdateStatus(ctx, id, meeting.ApprovableFrom(), meeting.StatusApproved)
}

// Schedule finalizes (or re-finalizes) the meeting's date-time. The
// wall-clock text from the request is stored with the exact digits the
// approver picked; a reschedule replaces the prior comment.
func (s *Service) Schedule(ctx context.Context, ident identity.Identity, req meeting.ScheduleMeetingRequest) error {
	if !ident.CanApprove() {
		return meeting.ErrUnauthorized
	}
	if err := req.Validate(); err != nil {
		return err
	}

	scheduledAt := req.DateTime + ":00"
	return s.MeetingRepository.Schedule(ctx, req.ID, meeting.SchedulableFrom(), scheduledAt, req.Comment)
}

func (s *Service) Complete(ctx context.Context, ident identity.Identity, id string) error {
	if !ident.IsAdmin() {
		return meeting.ErrUnauthorized
	}
	return s.MeetingRepository.UpdateStatus(ctx, id, meeting.CompletableFrom(), meeting.StatusCompleted)
}

func toMeetingResponse(m meeting.Meeting) meeting.MeetingResponse {
	status := m.Status
	if status == "" {
		status = meeting.StatusPending
	}
	return meeting.MeetingResponse{
		ID:              m.ID,
		DoerName:        m.DoerName,
		Reason:          m.Reason,
		DurationMinutes: m.DurationMinutes,
		PreferredDate:   m.PreferredDate,
		PreferredTime:   m.PreferredTime,
		ScheduledAt:     m.ScheduledAt,
		DisplayDateTime: m.DisplayDateTime(),
		Status:          string(status),
		Comment:         m.Comment,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func containsOwner(owners []string, name string) bool {
	for _, owner := range owners {
		if owner == name {
			return true
		}
	}
	return false
}
