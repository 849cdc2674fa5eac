package repository

import (
	"context"
	"time"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/analytics"
	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

// EngagementStore persists raw engagement facts and serves aggregations the
// daily-bucket model cannot answer, such as hourly trends.
type EngagementStore interface {
	// InsertEngagements appends a batch of engagement facts.
	InsertEngagements(ctx context.Context, events []*domain.EngagementEvent) (int, error)

	// EngagementCountsByType returns per-type fact totals for an event.
	EngagementCountsByType(ctx context.Context, eventID string) (map[domain.EngagementType]uint64, error)

	// HourlyTrends aggregates raw engagement facts into hourly trend
	// buckets. Zero from/to values leave that bound open.
	HourlyTrends(ctx context.Context, eventID string, from, to time.Time) ([]analytics.TrendBucket, error)
}

// DailyMetricStore persists the per-day metric counters.
type DailyMetricStore interface {
	// GetDailyMetric returns the metric for (event, day), or nil when no
	// record exists yet.
	GetDailyMetric(ctx context.Context, eventID string, day time.Time) (*domain.DailyMetric, error)

	// UpsertDailyMetric writes a metric row, replacing any previous version
	// for the same (event, day).
	UpsertDailyMetric(ctx context.Context, metric *domain.DailyMetric) error

	// ListDailyMetrics returns an event's daily metrics ordered by date.
	// Zero from/to values leave that bound open.
	ListDailyMetrics(ctx context.Context, eventID string, from, to time.Time) ([]domain.DailyMetric, error)
}

// FeedbackStore persists immutable per-(event, user) feedback records.
type FeedbackStore interface {
	InsertFeedback(ctx context.Context, record *domain.FeedbackRecord) error
	FeedbackExists(ctx context.Context, eventID, userID string) (bool, error)
	ListFeedback(ctx context.Context, eventID string) ([]domain.FeedbackRecord, error)
}

// FunnelStore persists append-only funnel stage entries.
type FunnelStore interface {
	InsertFunnelEntry(ctx context.Context, entry *domain.FunnelEntry) error
	ListFunnelEntries(ctx context.Context, eventID string, from, to time.Time) ([]domain.FunnelEntry, error)
}

// ApplicationStore reads application status rows owned by the event
// management subsystem; the engine only groups them by status.
type ApplicationStore interface {
	ApplicationStatusCounts(ctx context.Context, eventID string) (map[domain.ApplicationStatus]uint64, error)
}

// SummaryStore persists the single derived performance summary per event.
type SummaryStore interface {
	UpsertSummary(ctx context.Context, summary *domain.PerformanceSummary) error

	// GetSummary returns the persisted summary, or nil when the event has
	// never been summarized.
	GetSummary(ctx context.Context, eventID string) (*domain.PerformanceSummary, error)
}

// Store is the full persisted-record store backing the analytics engine.
type Store interface {
	EngagementStore
	DailyMetricStore
	FeedbackStore
	FunnelStore
	ApplicationStore
	SummaryStore

	// InitSchema initializes the database schema (creates tables if they
	// don't exist).
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive.
	Ping(ctx context.Context) error

	// Close closes the store and releases resources.
	Close() error
}
