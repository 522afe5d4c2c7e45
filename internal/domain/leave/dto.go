package leave

import (
	"time"

	"github.com/opsdesk/workforce-backend-go/internal/pkg/validator"
)

type FileLeaveRequest struct {
	// OwnerName is honored for admin callers only; everyone else files
	// for themselves and the handler overrides this field.
	OwnerName   string `json:"owner_name,omitempty"`
	LeaveType   string `json:"leave_type"`
	Duration    string `json:"duration"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	ManagerName string `json:"manager_name"`
	Reason      string `json:"reason"`
}

func (r *FileLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	// Leave type
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	// Duration
	if !validator.IsInSlice(r.Duration, AllowedDurations()) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration",
			Message: "duration must be one of: Full day, Half Day WFH, Short Leave",
		})
	}

	// Dates
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	// Reason
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectLeaveRequest struct {
	ID      string  `json:"-"`
	Comment *string `json:"comment,omitempty"`
}

type CancelLeaveRequest struct {
	ID      string  `json:"-"`
	Comment *string `json:"comment,omitempty"`
}

type LeaveRequestResponse struct {
	ID              string    `json:"id"`
	UniqueServiceNo int64     `json:"unique_service_no"`
	EmployeeName    string    `json:"employee_name"`
	LeaveType       string    `json:"leave_type"`
	Duration        string    `json:"duration"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	NoOfLeaves      int       `json:"no_of_leaves"`
	ManagerName     string    `json:"manager_name"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	Comment         *string   `json:"comment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ListLeaveRequestsResponse struct {
	TotalCount    int64                  `json:"total_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalPages    int                    `json:"total_pages"`
	LeaveRequests []LeaveRequestResponse `json:"leave_requests"`
}
