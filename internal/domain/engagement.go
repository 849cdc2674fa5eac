package domain

import "time"

// EngagementType classifies a raw engagement fact. The accumulator folds
// view/registration/cancellation into daily counters; the remaining types are
// stored as facts only.
type EngagementType string

const (
	EngagementView         EngagementType = "view"
	EngagementRegistration EngagementType = "registration"
	EngagementCancellation EngagementType = "cancellation"
	EngagementAttendance   EngagementType = "attendance"
	EngagementRating       EngagementType = "rating"
	EngagementShare        EngagementType = "share"
	EngagementBookmark     EngagementType = "bookmark"
)

// EngagementTypes lists every recognized engagement type.
var EngagementTypes = []EngagementType{
	EngagementView,
	EngagementRegistration,
	EngagementCancellation,
	EngagementAttendance,
	EngagementRating,
	EngagementShare,
	EngagementBookmark,
}

// Valid reports whether t is a recognized engagement type.
func (t EngagementType) Valid() bool {
	for _, known := range EngagementTypes {
		if t == known {
			return true
		}
	}
	return false
}

// EngagementMetadata carries the optional context attached to an engagement
// fact. Revenue and Refund are only meaningful for registration and
// cancellation facts respectively.
type EngagementMetadata struct {
	IsUniqueVisitor bool    `json:"is_unique_visitor,omitempty"`
	Revenue         float64 `json:"revenue,omitempty"`
	Refund          float64 `json:"refund,omitempty"`
	Rating          float64 `json:"rating,omitempty"`
	Source          string  `json:"source,omitempty"`
	Device          string  `json:"device,omitempty"`
}

// EngagementEvent is an immutable, append-only engagement fact. EngagementID
// is a deterministic content hash so replays collapse in storage.
type EngagementEvent struct {
	EngagementID string             `json:"engagement_id"`
	EventID      string             `json:"event_id"`
	UserID       string             `json:"user_id"`
	Type         EngagementType     `json:"engagement_type"`
	Timestamp    time.Time          `json:"timestamp"`
	Metadata     EngagementMetadata `json:"metadata"`
	ProcessedAt  time.Time          `json:"processed_at"`
	Version      uint64             `json:"-"`
}

// Day returns the engagement's calendar day truncated to midnight UTC, the
// bucket key for daily metric accumulation.
func (e *EngagementEvent) Day() time.Time {
	ts := e.Timestamp.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}
