package consumer

import (
	"context"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

// MessageParser defines the interface for parsing raw message bytes into
// engagement facts
type MessageParser interface {
	Parse(body []byte) (*domain.EngagementEvent, error)
}

// MetricFolder applies a stored engagement fact to its event's daily metric
type MetricFolder interface {
	FoldEngagement(ctx context.Context, event *domain.EngagementEvent) (*domain.DailyMetric, error)
}
