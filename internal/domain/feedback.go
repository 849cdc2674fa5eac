package domain

import "time"

// AttendanceStatus records how a feedback author related to the event.
type AttendanceStatus string

const (
	AttendanceAttended    AttendanceStatus = "attended"
	AttendanceNotAttended AttendanceStatus = "registered_not_attended"
	AttendanceCancelled   AttendanceStatus = "cancelled"
)

// Valid reports whether s is a recognized attendance status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceAttended, AttendanceNotAttended, AttendanceCancelled:
		return true
	}
	return false
}

// Rating holds the per-dimension scores of one feedback record. Overall is
// required (1-5); the other dimensions are optional and zero when the author
// skipped them.
type Rating struct {
	Overall      float64 `json:"overall"`
	Content      float64 `json:"content,omitempty"`
	Organization float64 `json:"organization,omitempty"`
	Venue        float64 `json:"venue,omitempty"`
	Networking   float64 `json:"networking,omitempty"`
}

// FeedbackRecord is one user's feedback for one event. The (event, user) pair
// is unique; records are immutable after creation.
type FeedbackRecord struct {
	EventID          string           `json:"event_id"`
	UserID           string           `json:"user_id"`
	Rating           Rating           `json:"rating"`
	Liked            []string         `json:"liked,omitempty"`
	Disliked         []string         `json:"disliked,omitempty"`
	Suggestions      string           `json:"suggestions,omitempty"`
	WouldRecommend   bool             `json:"would_recommend"`
	WouldAttendAgain bool             `json:"would_attend_again"`
	AttendanceStatus AttendanceStatus `json:"attendance_status"`
	SubmittedAt      time.Time        `json:"submitted_at"`
	Version          uint64           `json:"-"`
}

// ApplicationStatus is the lifecycle status of a student's application to an
// event. Attendance rates divide attended by registered.
type ApplicationStatus string

const (
	ApplicationInterested ApplicationStatus = "interested"
	ApplicationRegistered ApplicationStatus = "registered"
	ApplicationAttended   ApplicationStatus = "attended"
)
