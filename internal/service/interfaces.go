package service

import (
	"context"
	"time"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/analytics"
	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

// AnalyticsServicer defines the interface for analytics service operations
type AnalyticsServicer interface {
	// RecordEngagement stores an engagement fact and folds it into the
	// owning event's daily metric synchronously, returning the updated
	// metric.
	RecordEngagement(ctx context.Context, event *domain.EngagementEvent) (*domain.DailyMetric, error)

	// TrackEngagement publishes an engagement fact to the queue for
	// asynchronous processing and returns its deterministic ID.
	TrackEngagement(ctx context.Context, event *domain.EngagementEvent) (string, error)

	// TrackEngagementsBulk publishes a batch of engagement facts. It
	// returns the IDs of the accepted facts and the per-fact errors of
	// the rejected ones.
	TrackEngagementsBulk(ctx context.Context, events []domain.EngagementEvent) ([]string, []string, error)

	// FoldEngagement applies one engagement fact to its (event, day)
	// metric and persists the result. Used by both the synchronous path
	// and the queue consumer.
	FoldEngagement(ctx context.Context, event *domain.EngagementEvent) (*domain.DailyMetric, error)

	// SubmitFeedback validates and stores one feedback record.
	SubmitFeedback(ctx context.Context, record *domain.FeedbackRecord) error

	// SummarizeFeedback aggregates an event's feedback records.
	SummarizeFeedback(ctx context.Context, eventID string) (*analytics.FeedbackSummary, error)

	// RecordFunnelEntry appends one funnel stage entry.
	RecordFunnelEntry(ctx context.Context, entry *domain.FunnelEntry) error

	// GetTrends returns an event's metric series at the requested
	// granularity.
	GetTrends(ctx context.Context, eventID string, granularity analytics.Granularity, from, to time.Time) ([]analytics.TrendBucket, error)

	// ComputeFunnel computes stage-presence counts, conversion rates and
	// drop-offs over an event's funnel entries.
	ComputeFunnel(ctx context.Context, eventID string, from, to time.Time) (*analytics.FunnelMetrics, error)

	// FunnelTrends returns per-day distinct-user counts per funnel stage.
	FunnelTrends(ctx context.Context, eventID string, from, to time.Time) ([]analytics.FunnelTrendPoint, error)

	// AnalyzeDropoff classifies user journeys and measures inter-stage
	// latency for an event.
	AnalyzeDropoff(ctx context.Context, eventID string) (*analytics.DropoffAnalysis, error)

	// BuildPerformanceSummary recomputes and persists the event's
	// aggregate summary from stored records.
	BuildPerformanceSummary(ctx context.Context, eventID string) (*domain.PerformanceSummary, error)

	// GetPerformanceSummary returns the persisted summary, or nil when
	// none has been built yet.
	GetPerformanceSummary(ctx context.Context, eventID string) (*domain.PerformanceSummary, error)
}
