package consumer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

// JSONEngagementParser implements MessageParser for JSON-formatted engagement
// messages, the inverse of the publisher's encoding.
type JSONEngagementParser struct{}

// NewJSONEngagementParser creates a new JSON engagement parser
func NewJSONEngagementParser() *JSONEngagementParser {
	return &JSONEngagementParser{}
}

// Parse parses a JSON message body into an EngagementEvent. Messages with an
// unknown engagement type or no timestamp are rejected here so they never
// reach the writer.
func (p *JSONEngagementParser) Parse(body []byte) (*domain.EngagementEvent, error) {
	var event domain.EngagementEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	if event.EngagementID == "" {
		return nil, fmt.Errorf("message has no engagement_id")
	}
	if event.EventID == "" {
		return nil, fmt.Errorf("message has no event_id")
	}
	if !event.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEngagementType, event.Type)
	}
	if event.Timestamp.IsZero() {
		return nil, fmt.Errorf("%w: message has no timestamp", domain.ErrUnresolvedDay)
	}

	event.ProcessedAt = time.Now()
	event.Version = uint64(time.Now().UnixNano())

	return &event, nil
}
