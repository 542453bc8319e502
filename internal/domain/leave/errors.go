package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been processed")
	ErrRejectionReasonEmpty  = errors.New("rejection reason is required")
	ErrUnauthorized          = errors.New("unauthorized to access this leave request")
)
