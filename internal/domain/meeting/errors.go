package meeting

import "errors"

var (
	ErrMeetingNotFound         = errors.New("meeting not found")
	ErrMeetingAlreadyProcessed = errors.New("meeting has already been processed")
	ErrUnauthorized            = errors.New("unauthorized to act on this meeting")
)
