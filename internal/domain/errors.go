package domain

import "errors"

// Validation errors surfaced at the call boundary. Storage failures are
// wrapped and propagated as-is; an event with no stored records is not an
// error at all.
var (
	ErrUnknownEngagementType = errors.New("unknown engagement type")
	ErrUnknownFunnelStage    = errors.New("unknown funnel stage")
	ErrUnknownGranularity    = errors.New("unknown trend granularity")
	ErrInvalidRating         = errors.New("overall rating must be between 1 and 5")
	ErrInvalidAttendance     = errors.New("unknown attendance status")
	ErrUnresolvedDay         = errors.New("engagement timestamp does not resolve to a day bucket")
	ErrDuplicateFeedback     = errors.New("feedback already submitted for this event and user")
)
