package domain

import "time"

// FunnelStage is one ordered milestone in the event lifecycle funnel. The
// funnel is a fixed three-stage enumeration; the calculator and dropoff
// analyzer must not assume additional stages exist.
type FunnelStage string

const (
	StageRegistered FunnelStage = "registered"
	StageStarted    FunnelStage = "started"
	StageCompleted  FunnelStage = "completed"
)

// FunnelStages lists the funnel stages in order.
var FunnelStages = []FunnelStage{StageRegistered, StageStarted, StageCompleted}

// Valid reports whether s is a recognized funnel stage.
func (s FunnelStage) Valid() bool {
	for _, known := range FunnelStages {
		if s == known {
			return true
		}
	}
	return false
}

// FunnelEntry is an immutable fact that a user reached a funnel stage. A user
// typically has one entry per stage reached, but real data is not guaranteed
// to form a subset chain.
type FunnelEntry struct {
	EventID   string      `json:"event_id"`
	UserID    string      `json:"user_id"`
	Stage     FunnelStage `json:"funnel_stage"`
	Timestamp time.Time   `json:"timestamp"`
}
