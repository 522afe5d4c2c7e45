package leave

import (
	"context"
	"fmt"

	"github.com/opsdesk/workforce-backend-go/internal/domain/identity"
	"github.com/opsdesk/workforce-backend-go/internal/domain/leave"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/queryscope"
	"github.com/opsdesk/workforce-backend-go/internal/service/visibility"
)

const (
	pendingExpr    = "(l.status = 'Pending' OR l.status IS NULL OR l.status = '')"
	notPendingExpr = "(l.status IS NOT NULL AND l.status <> '' AND l.status <> 'Pending')"
)

// listingDefinition declares the allow-lists for leave request
// listings. The date filters bound the requested range from either
// side; the employee filter is a substring match.
func listingDefinition() queryscope.Definition {
	return queryscope.Definition{
		Filters: map[string]queryscope.Field{
			"filter_employee":   {Column: "l.employee_name", Op: "ILIKE"},
			"filter_status":     {Column: "l.status", Op: "="},
			"filter_leave_type": {Column: "l.leave_type", Op: "="},
			"filter_duration":   {Column: "l.duration", Op: "="},
			"filter_start_date": {Column: "l.start_date", Op: ">="},
			"filter_end_date":   {Column: "l.end_date", Op: "<="},
		},
		SortColumns: map[string]string{
			"unique_service_no": "l.unique_service_no",
			"employee_name":     "l.employee_name",
			"leave_type":        "l.leave_type",
			"duration":          "l.duration",
			"start_date":        "l.start_date",
			"end_date":          "l.end_date",
			"status":            "l.status",
		},
		DefaultSort: "unique_service_no",
		DefaultDir:  queryscope.Desc,
	}
}

type Service struct {
	leave.LeaveRequestRepository
	resolver *visibility.Resolver
}

func NewService(leaveRequestRepository leave.LeaveRequestRepository, resolver *visibility.Resolver) *Service {
	return &Service{
		LeaveRequestRepository: leaveRequestRepository,
		resolver:               resolver,
	}
}

func (s *Service) File(ctx context.Context, ident identity.Identity, req leave.FileLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	owner := ident.Name
	if ident.IsAdmin() && req.OwnerName != "" {
		owner = req.OwnerName
	}

	lr := leave.LeaveRequest{
		EmployeeName: owner,
		LeaveType:    req.LeaveType,
		Duration:     req.Duration,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ManagerName:  req.ManagerName,
		Reason:       req.Reason,
		Status:       leave.StatusPending,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, lr)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to file leave request: %w", err)
	}

	return toLeaveRequestResponse(created), nil
}

// Get returns a single leave request the caller is allowed to see. A
// request outside the caller's scope reads as not found, the same as a
// missing id, so callers cannot probe for existence.
func (s *Service) Get(ctx context.Context, ident identity.Identity, id string) (leave.LeaveRequestResponse, error) {
	lr, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	scope, err := s.resolver.ResolveAuditOwners(ctx, ident, visibility.KindLeaveRequest)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !scope.All && !containsOwner(scope.Owners, lr.EmployeeName) {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}

	return toLeaveRequestResponse(lr), nil
}

func (s *Service) ListPending(ctx context.Context, ident identity.Identity, q queryscope.Query) (leave.ListLeaveRequestsResponse, error) {
	scope, err := s.resolver.ResolveActionableOwners(ctx, ident, visibility.KindLeaveRequest)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}
	return s.list(ctx, scope, q, pendingExpr)
}

func (s *Service) ListHistory(ctx context.Context, ident identity.Identity, q queryscope.Query) (leave.ListLeaveRequestsResponse, error) {
	scope, err := s.resolver.ResolveAuditOwners(ctx, ident, visibility.KindLeaveRequest)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}
	return s.list(ctx, scope, q, notPendingExpr)
}

func (s *Service) list(ctx context.Context, owners identity.OwnerScope, q queryscope.Query, statusExpr string) (leave.ListLeaveRequestsResponse, error) {
	scope := buildScope(q)
	scope.Where(statusExpr)
	if !owners.All {
		scope.WhereOwners(owners.Owners, "l.employee_name")
	}

	total, err := s.LeaveRequestRepository.Count(ctx, scope)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	scope.ClampPage(total)

	requests, err := s.LeaveRequestRepository.List(ctx, scope)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, toLeaveRequestResponse(lr))
	}

	return leave.ListLeaveRequestsResponse{
		TotalCount:    total,
		Page:          scope.Page(),
		Limit:         scope.PageSize(),
		TotalPages:    queryscope.TotalPages(total, scope.PageSize()),
		LeaveRequests: responses,
	}, nil
}

// buildScope resolves the caller query. A filter_status of "Pending" is
// rewritten to the pending predicate so empty-status rows match it too.
func buildScope(q queryscope.Query) *queryscope.Scope {
	pendingFilter := false
	if q.Filters["filter_status"] == string(leave.StatusPending) {
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
		return leave.ErrUnauthorized
	}
	return s.LeaveRequestRepository.UpdateStatus(ctx, id, leave.ApprovableFrom(), leave.StatusApproved, nil)
}

func (s *Service) Reject(ctx context.Context, ident identity.Identity, req leave.RejectLeaveRequest) error {
	if !ident.CanApprove() {
		return leave.ErrUnauthorized
	}
	return s.LeaveRequestRepository.UpdateStatus(ctx, req.ID, leave.ApprovableFrom(), leave.StatusRejected, req.Comment)
}

// Cancel withdraws a pending or approved request. Like the other
// transitions it is approver-only; requesters are read-only.
func (s *Service) Cancel(ctx context.Context, ident identity.Identity, req leave.CancelLeaveRequest) error {
	if !ident.CanApprove() {
		return leave.ErrUnauthorized
	}
	return s.LeaveRequestRepository.UpdateStatus(ctx, req.ID, leave.CancellableFrom(), leave.StatusCancelled, req.Comment)
}

func containsOwner(owners []string, name string) bool {
	for _, owner := range owners {
		if owner == name {
			return true
		}
	}
	return false
}

func toLeaveRequestResponse(lr leave.LeaveRequest) leave.LeaveRequestResponse {
	status := lr.Status
	if status == "" {
		status = leave.StatusPending
	}
	return leave.LeaveRequestResponse{
		ID:              lr.ID,
		UniqueServiceNo: lr.UniqueServiceNo,
		EmployeeName:    lr.EmployeeName,
		LeaveType:       lr.LeaveType,
		Duration:        lr.Duration,
		StartDate:       lr.StartDate,
		EndDate:         lr.EndDate,
		NoOfLeaves:      lr.NoOfDays(),
		ManagerName:     lr.ManagerName,
		Reason:          lr.Reason,
		Status:          string(status),
		Comment:         lr.Comment,
		CreatedAt:       lr.CreatedAt,
		UpdatedAt:       lr.UpdatedAt,
	}
}
