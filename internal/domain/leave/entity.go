package leave

import "time"

type Status string

// Status values are stored verbatim; the portal's historical rows carry
// these exact literals.
const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approve"
	StatusRejected  Status = "Reject"
	StatusCancelled Status = "Cancelled"
)

// IsPending treats an empty/NULL status as not-yet-decided. Old rows
// were written before the column had a default, so "" is a valid
// representation of Pending everywhere, listings included.
func (s Status) IsPending() bool {
	return s == StatusPending || s == ""
}

// Durations a request may be filed for.
const (
	DurationFullDay    = "Full day"
	DurationHalfDayWFH = "Half Day WFH"
	DurationShortLeave = "Short Leave"
)

func AllowedDurations() []string {
	return []string{DurationFullDay, DurationHalfDayWFH, DurationShortLeave}
}

// LeaveRequest entity. StartDate/EndDate are naive "2006-01-02" text:
// the digits the requester picked are stored and redisplayed unchanged.
// EndDate is never before StartDate.
type LeaveRequest struct {
	ID              string
	UniqueServiceNo int64 // serial, the listing's default sort key
	EmployeeName    string
	LeaveType       string
	Duration        string
	StartDate       string
	EndDate         string
	ManagerName     string
	Reason          string

	Status  Status
	Comment *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoOfDays derives the inclusive day count between StartDate and
// EndDate (end - start + 1), recomputed on every read and never stored.
func (lr LeaveRequest) NoOfDays() int {
	start, ok1 := parseDay(lr.StartDate)
	end, ok2 := parseDay(lr.EndDate)
	if !ok1 || !ok2 {
		return 0
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 0
	}
	return days
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}

// ApprovableFrom lists the statuses approve and reject may transition
// from. Empty is included per the pending-equivalence rule.
func ApprovableFrom() []Status {
	return []Status{StatusPending, ""}
}

// CancellableFrom lists the statuses cancel may transition from.
func CancellableFrom() []Status {
	return []Status{StatusPending, "", StatusApproved}
}
