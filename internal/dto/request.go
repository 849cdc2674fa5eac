package dto

import "time"

// EngagementMetadata carries the optional context of an engagement request
type EngagementMetadata struct {
	IsUniqueVisitor bool    `json:"is_unique_visitor" example:"true"`
	Revenue         float64 `json:"revenue" example:"49.99"`
	Refund          float64 `json:"refund" example:"49.99"`
	Rating          float64 `json:"rating" example:"4.5"`
	Source          string  `json:"source" example:"newsletter"`
	Device          string  `json:"device" example:"mobile"`
}

// RecordEngagementRequest represents a synchronous engagement ingestion request
type RecordEngagementRequest struct {
	UserID         string             `json:"user_id" binding:"required" example:"user_123"`
	EngagementType string             `json:"engagement_type" binding:"required" example:"view"`
	Timestamp      time.Time          `json:"timestamp" binding:"required" example:"2025-03-10T12:00:00Z"`
	Metadata       EngagementMetadata `json:"metadata"`
}

// TrackEngagementRequest represents an asynchronous engagement tracking request
type TrackEngagementRequest struct {
	EventID        string             `json:"event_id" binding:"required" example:"evt_987"`
	UserID         string             `json:"user_id" binding:"required" example:"user_123"`
	EngagementType string             `json:"engagement_type" binding:"required" example:"view"`
	Timestamp      time.Time          `json:"timestamp" binding:"required" example:"2025-03-10T12:00:00Z"`
	Metadata       EngagementMetadata `json:"metadata"`
}

// TrackEngagementsBulkRequest represents a bulk engagement tracking request
type TrackEngagementsBulkRequest struct {
	Engagements []TrackEngagementRequest `json:"engagements" binding:"required,min=1,max=1000,dive"`
}

// RatingRequest holds the per-dimension scores of a feedback submission.
// Overall is required; the other dimensions are optional.
type RatingRequest struct {
	Overall      float64 `json:"overall" binding:"required" example:"4.5"`
	Content      float64 `json:"content" example:"4"`
	Organization float64 `json:"organization" example:"5"`
	Venue        float64 `json:"venue" example:"3.5"`
	Networking   float64 `json:"networking" example:"4"`
}

// SubmitFeedbackRequest represents a feedback submission request
type SubmitFeedbackRequest struct {
	UserID           string        `json:"user_id" binding:"required" example:"user_123"`
	Rating           RatingRequest `json:"rating" binding:"required"`
	Liked            []string      `json:"liked" example:"sessions,venue"`
	Disliked         []string      `json:"disliked" example:"catering"`
	Suggestions      string        `json:"suggestions" example:"more hands-on workshops"`
	WouldRecommend   bool          `json:"would_recommend" example:"true"`
	WouldAttendAgain bool          `json:"would_attend_again" example:"true"`
	AttendanceStatus string        `json:"attendance_status" binding:"required" example:"attended"`
}

// RecordFunnelEntryRequest represents a funnel stage entry request
type RecordFunnelEntryRequest struct {
	UserID    string    `json:"user_id" binding:"required" example:"user_123"`
	Stage     string    `json:"stage" binding:"required" example:"registered"`
	Timestamp time.Time `json:"timestamp" example:"2025-03-10T12:00:00Z"`
}

// GetTrendsRequest represents a trend query request
type GetTrendsRequest struct {
	Granularity string    `form:"granularity" example:"weekly"`
	From        time.Time `form:"from" time_format:"2006-01-02" example:"2025-03-01"`
	To          time.Time `form:"to" time_format:"2006-01-02" example:"2025-03-31"`
}

// FunnelRangeRequest represents a funnel query time range
type FunnelRangeRequest struct {
	From time.Time `form:"from" time_format:"2006-01-02" example:"2025-03-01"`
	To   time.Time `form:"to" time_format:"2006-01-02" example:"2025-03-31"`
}
