package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request has already been processed")
	ErrUnauthorized                 = errors.New("unauthorized to act on this leave request")
)
