package meeting

import (
	"time"

	"github.com/opsdesk/workforce-backend-go/internal/pkg/validator"
)

type BookMeetingRequest struct {
	// OwnerName is honored for admin callers only; everyone else books
	// for themselves and the handler overrides this field.
	OwnerName       string  `json:"owner_name,omitempty"`
	Reason          string  `json:"reason"`
	DurationMinutes int     `json:"duration_minutes"`
	PreferredDate   string  `json:"preferred_date"`
	PreferredTime   *string `json:"preferred_time,omitempty"`
}

func (r *BookMeetingRequest) Validate() error {
	var errs validator.ValidationErrors

	// Reason
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	// Duration
	if r.DurationMinutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_minutes",
			Message: "duration_minutes must be a positive integer",
		})
	}

	// Preferred date
	if _, ok := validator.IsValidDate(r.PreferredDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "preferred_date",
			Message: "preferred_date must be a valid date (YYYY-MM-DD)",
		})
	}

	// Preferred time
	if r.PreferredTime != nil && !validator.IsValidClock(*r.PreferredTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "preferred_time",
			Message: "preferred_time must be a valid time (HH:MM)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleMeetingRequest struct {
	ID       string  `json:"-"`
	DateTime string  `json:"date_time"`
	Comment  *string `json:"comment,omitempty"`
}

func (r *ScheduleMeetingRequest) Validate() error {
	var errs validator.ValidationErrors

	// ID
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	// Date-time
	if !validator.IsValidWallClock(r.DateTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_time",
			Message: "date_time must be a valid date-time (YYYY-MM-DD HH:MM)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MeetingResponse struct {
	ID              string    `json:"id"`
	DoerName        string    `json:"doer_name"`
	Reason          string    `json:"reason"`
	DurationMinutes int       `json:"duration_minutes"`
	PreferredDate   string    `json:"preferred_date"`
	PreferredTime   *string   `json:"preferred_time,omitempty"`
	ScheduledAt     *string   `json:"scheduled_at,omitempty"`
	DisplayDateTime string    `json:"display_datetime"`
	Status          string    `json:"status"`
	Comment         *string   `json:"comment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ListMeetingsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Meetings   []MeetingResponse `json:"meetings"`
}
