package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"engagement_type is required"`
}

// TrackEngagementResponse represents a successful engagement tracking response
type TrackEngagementResponse struct {
	EngagementID string `json:"engagement_id" example:"9f86d081884c7d65"`
	Status       string `json:"status" example:"accepted"`
}

// TrackEngagementsBulkResponse represents a successful bulk tracking response
type TrackEngagementsBulkResponse struct {
	Accepted      int      `json:"accepted" example:"5"`
	Rejected      int      `json:"rejected" example:"0"`
	EngagementIDs []string `json:"engagement_ids,omitempty" example:"9f86d081,a3c65c29"`
	Errors        []string `json:"errors,omitempty" example:"unknown engagement type on engagement 3"`
}

// SubmitFeedbackResponse represents a successful feedback submission response
type SubmitFeedbackResponse struct {
	Status string `json:"status" example:"recorded"`
}

// RecordFunnelEntryResponse represents a successful funnel entry response
type RecordFunnelEntryResponse struct {
	Status string `json:"status" example:"recorded"`
}
