package meeting

import "time"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
)

// IsPending treats an empty status as not-yet-decided, the same as
// Pending. Rows written before the status column existed carry "".
func (s Status) IsPending() bool {
	return s == StatusPending || s == ""
}

// DefaultPreferredTime is the display fallback when the requester never
// picked a time of day.
const DefaultPreferredTime = "09:00"

// Meeting entity. PreferredDate/PreferredTime hold the requester's
// original ask and are never cleared; ScheduledAt is the finalized
// wall-clock date-time, written only by a schedule transition.
//
// Date-time fields are naive wall-clock text ("2006-01-02 15:04:05").
// They are stored and redisplayed with the exact digits the approver
// picked; no timezone conversion happens in either direction.
type Meeting struct {
	ID              string
	DoerName        string // owner identifier, not necessarily the creator
	Reason          string
	DurationMinutes int

	PreferredDate string  // "2006-01-02", always set at creation
	PreferredTime *string // "15:04", optional
	ScheduledAt   *string // "2006-01-02 15:04:05", set only once scheduled

	Status  Status
	Comment *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayDateTime derives the date-time shown to users, recomputed on
// every read and never stored. Pending meetings (and Approved meetings
// that were never scheduled) show the preferred ask; anything with a
// finalized date shows it trimmed to minutes.
func (m Meeting) DisplayDateTime() string {
	if !m.Status.IsPending() && m.ScheduledAt != nil && len(*m.ScheduledAt) >= 16 {
		return (*m.ScheduledAt)[:16]
	}
	preferredTime := DefaultPreferredTime
	if m.PreferredTime != nil && *m.PreferredTime != "" {
		preferredTime = *m.PreferredTime
	}
	return m.PreferredDate + " " + preferredTime
}

// ApprovableFrom lists the statuses approve may transition from.
func ApprovableFrom() []Status {
	return []Status{StatusPending}
}

// SchedulableFrom lists the statuses schedule may transition from.
// Scheduled is included: rescheduling is re-entrant.
func SchedulableFrom() []Status {
	return []Status{StatusPending, StatusApproved, StatusScheduled}
}

// CompletableFrom lists the statuses complete may transition from.
func CompletableFrom() []Status {
	return []Status{StatusScheduled, StatusApproved}
}
