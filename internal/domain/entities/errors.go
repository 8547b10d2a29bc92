package entities

import "errors"

// Domain errors
var (
	// ErrMeetingNotOwned is returned when an upsert targets another user's meeting
	ErrMeetingNotOwned = errors.New("meeting belongs to another user")
)
