package response

import (
	"errors"
	"net/http"

	"github.com/opsdesk/workforce-backend-go/internal/domain/identity"
	"github.com/opsdesk/workforce-backend-go/internal/domain/leave"
	"github.com/opsdesk/workforce-backend-go/internal/domain/meeting"
	"github.com/opsdesk/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Meeting domain errors
	case errors.Is(err, meeting.ErrMeetingNotFound):
		NotFound(w, "Meeting not found")
	case errors.Is(err, meeting.ErrMeetingAlreadyProcessed):
		Conflict(w, "Meeting has already been processed")
	case errors.Is(err, meeting.ErrUnauthorized):
		Forbidden(w, "You are not allowed to perform this action")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request has already been processed")
	case errors.Is(err, leave.ErrUnauthorized):
		Forbidden(w, "You are not allowed to perform this action")

	// Identity domain errors
	case errors.Is(err, identity.ErrIdentityNotFound):
		NotFound(w, "Identity not found")
	case errors.Is(err, identity.ErrInvalidToken):
		Unauthorized(w, "Invalid identity token")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
