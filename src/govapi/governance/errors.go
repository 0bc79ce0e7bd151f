package governance

import "errors"

// Every precondition violation is a typed result the caller can match
// with errors.Is; anything else coming out of the service is an
// infrastructure failure.
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidState     = errors.New("invalid proposal state for this operation")
	ErrAlreadyVoted     = errors.New("member has already voted on this proposal")
	ErrVotingClosed     = errors.New("voting has closed")
	ErrNotFound         = errors.New("proposal not found")
	ErrValidationFailed = errors.New("validation failed")
)
