package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/analytics"
	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/queue"
	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/repository"
)

// AnalyticsService represents the analytics service
type AnalyticsService struct {
	publisher queue.EngagementPublisher
	store     repository.Store
	folds     *keyedMutex
	log       *zap.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(publisher queue.EngagementPublisher, store repository.Store, log *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		publisher: publisher,
		store:     store,
		folds:     newKeyedMutex(),
		log:       log,
	}
}

// computeEngagementID generates a deterministic engagement ID based on content
// Uses SHA-256 hash of: user_id|event_id|engagement_type|timestamp
func computeEngagementID(event *domain.EngagementEvent) string {
	data := fmt.Sprintf("%s|%s|%s|%d",
		event.UserID,
		event.EventID,
		event.Type,
		event.Timestamp.UnixNano(),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func validateEngagement(event *domain.EngagementEvent) error {
	if !event.Type.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownEngagementType, event.Type)
	}
	if event.Timestamp.IsZero() {
		return fmt.Errorf("%w: engagement has no timestamp", domain.ErrUnresolvedDay)
	}
	if event.Timestamp.After(time.Now().Add(time.Second)) {
		return fmt.Errorf("timestamp cannot be in the future: %s", event.Timestamp.Format(time.RFC3339))
	}
	return nil
}

// RecordEngagement stores one engagement fact and synchronously folds it into
// the owning event's daily metric.
func (s *AnalyticsService) RecordEngagement(ctx context.Context, event *domain.EngagementEvent) (*domain.DailyMetric, error) {
	if err := validateEngagement(event); err != nil {
		return nil, err
	}
	event.EngagementID = computeEngagementID(event)

	if _, err := s.store.InsertEngagements(ctx, []*domain.EngagementEvent{event}); err != nil {
		return nil, fmt.Errorf("failed to store engagement: %w", err)
	}

	return s.FoldEngagement(ctx, event)
}

// TrackEngagement publishes one engagement fact to the queue. The engagement
// ID is always derived from the fact's content, so a caller-supplied ID is
// overwritten and identical facts keep collapsing to one row in storage.
func (s *AnalyticsService) TrackEngagement(ctx context.Context, event *domain.EngagementEvent) (string, error) {
	if err := validateEngagement(event); err != nil {
		return "", err
	}
	event.EngagementID = computeEngagementID(event)

	if err := s.publisher.PublishEngagement(ctx, event); err != nil {
		return "", fmt.Errorf("failed to publish engagement to queue: %w", err)
	}

	return event.EngagementID, nil
}

// TrackEngagementsBulk validates and publishes multiple engagement facts
func (s *AnalyticsService) TrackEngagementsBulk(ctx context.Context, events []domain.EngagementEvent) ([]string, []string, error) {
	var engagementIDs []string
	var errors []string

	for i, event := range events {
		engagementID, err := s.TrackEngagement(ctx, &event)
		if err != nil {
			errors = append(errors, err.Error())
			s.log.Warn("Failed to track engagement in bulk",
				zap.Int("index", i),
				zap.Error(err),
				zap.String("event_id", event.EventID))
			continue
		}
		engagementIDs = append(engagementIDs, engagementID)
	}

	return engagementIDs, errors, nil
}

// FoldEngagement applies one engagement fact to its (event, day) daily metric
// and persists a new version. Folds for the same key are serialized. Replayed
// facts collapse in storage by engagement ID but fold again here, so queue
// redelivery can overcount until the source deduplicates.
func (s *AnalyticsService) FoldEngagement(ctx context.Context, event *domain.EngagementEvent) (*domain.DailyMetric, error) {
	if !event.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEngagementType, event.Type)
	}
	if event.Timestamp.IsZero() {
		return nil, fmt.Errorf("%w: engagement has no timestamp", domain.ErrUnresolvedDay)
	}

	day := event.Day()
	unlock := s.folds.Lock(event.EventID + "|" + day.Format("2006-01-02"))
	defer unlock()

	metric, err := s.store.GetDailyMetric(ctx, event.EventID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily metric: %w", err)
	}
	if metric == nil {
		metric = &domain.DailyMetric{
			EventID: event.EventID,
			Date:    day,
		}
	}

	if err := analytics.ApplyEngagement(metric, event.Type, event.Metadata); err != nil {
		return nil, err
	}

	metric.Version = uint64(time.Now().UnixNano())
	if err := s.store.UpsertDailyMetric(ctx, metric); err != nil {
		return nil, fmt.Errorf("failed to upsert daily metric: %w", err)
	}

	return metric, nil
}

// SubmitFeedback validates and stores one feedback record. The (event, user)
// pair is unique; a second submission is rejected.
func (s *AnalyticsService) SubmitFeedback(ctx context.Context, record *domain.FeedbackRecord) error {
	if record.Rating.Overall < 1 || record.Rating.Overall > 5 {
		return fmt.Errorf("%w: overall rating %v is outside 1-5", domain.ErrInvalidRating, record.Rating.Overall)
	}
	for name, value := range map[string]float64{
		"content":      record.Rating.Content,
		"organization": record.Rating.Organization,
		"venue":        record.Rating.Venue,
		"networking":   record.Rating.Networking,
	} {
		if value != 0 && (value < 1 || value > 5) {
			return fmt.Errorf("%w: %s rating %v is outside 1-5", domain.ErrInvalidRating, name, value)
		}
	}
	if !record.AttendanceStatus.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAttendance, record.AttendanceStatus)
	}

	exists, err := s.store.FeedbackExists(ctx, record.EventID, record.UserID)
	if err != nil {
		return fmt.Errorf("failed to check existing feedback: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: user %s already submitted feedback for event %s",
			domain.ErrDuplicateFeedback, record.UserID, record.EventID)
	}

	if record.SubmittedAt.IsZero() {
		record.SubmittedAt = time.Now()
	}

	if err := s.store.InsertFeedback(ctx, record); err != nil {
		return fmt.Errorf("failed to store feedback: %w", err)
	}

	s.log.Info("Feedback stored",
		zap.String("event_id", record.EventID),
		zap.String("user_id", record.UserID),
		zap.Float64("overall", record.Rating.Overall))

	return nil
}

// SummarizeFeedback aggregates an event's feedback records
func (s *AnalyticsService) SummarizeFeedback(ctx context.Context, eventID string) (*analytics.FeedbackSummary, error) {
	records, err := s.store.ListFeedback(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	summary := analytics.SummarizeFeedback(records)
	return &summary, nil
}

// RecordFunnelEntry appends one funnel stage entry
func (s *AnalyticsService) RecordFunnelEntry(ctx context.Context, entry *domain.FunnelEntry) error {
	if !entry.Stage.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownFunnelStage, entry.Stage)
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := s.store.InsertFunnelEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to store funnel entry: %w", err)
	}
	return nil
}

// GetTrends returns an event's metric series at the requested granularity.
// Hourly series come straight from the raw facts; the rest re-bucket the
// stored daily metrics.
func (s *AnalyticsService) GetTrends(ctx context.Context, eventID string, granularity analytics.Granularity, from, to time.Time) ([]analytics.TrendBucket, error) {
	if granularity == analytics.GranularityHourly {
		buckets, err := s.store.HourlyTrends(ctx, eventID, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to load hourly trends: %w", err)
		}
		return buckets, nil
	}

	metrics, err := s.store.ListDailyMetrics(ctx, eventID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily metrics: %w", err)
	}

	switch granularity {
	case analytics.GranularityWeekly:
		return analytics.WeeklyTrends(metrics), nil
	case analytics.GranularityMonthly:
		return analytics.MonthlyTrends(metrics), nil
	case analytics.GranularityDaily:
		return analytics.DailyTrends(metrics), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGranularity, granularity)
}

// ComputeFunnel computes funnel metrics over an event's entries
func (s *AnalyticsService) ComputeFunnel(ctx context.Context, eventID string, from, to time.Time) (*analytics.FunnelMetrics, error) {
	entries, err := s.store.ListFunnelEntries(ctx, eventID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list funnel entries: %w", err)
	}

	metrics := analytics.ComputeFunnel(entries)
	return &metrics, nil
}

// FunnelTrends returns per-day distinct-user counts per funnel stage
func (s *AnalyticsService) FunnelTrends(ctx context.Context, eventID string, from, to time.Time) ([]analytics.FunnelTrendPoint, error) {
	entries, err := s.store.ListFunnelEntries(ctx, eventID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list funnel entries: %w", err)
	}

	return analytics.FunnelTrends(entries), nil
}

// AnalyzeDropoff classifies user journeys and measures inter-stage latency
func (s *AnalyticsService) AnalyzeDropoff(ctx context.Context, eventID string) (*analytics.DropoffAnalysis, error) {
	entries, err := s.store.ListFunnelEntries(ctx, eventID, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to list funnel entries: %w", err)
	}

	analysis := analytics.AnalyzeDropoff(entries)
	return &analysis, nil
}

// BuildPerformanceSummary recomputes the event's aggregate summary from the
// stored records and persists it as a new version. Any failing input aborts
// the build so a partial summary is never written.
func (s *AnalyticsService) BuildPerformanceSummary(ctx context.Context, eventID string) (*domain.PerformanceSummary, error) {
	counts, err := s.store.EngagementCountsByType(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load engagement counts: %w", err)
	}

	metrics, err := s.store.ListDailyMetrics(ctx, eventID, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to list daily metrics: %w", err)
	}

	feedback, err := s.store.ListFeedback(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	applications, err := s.store.ApplicationStatusCounts(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load application counts: %w", err)
	}

	summary := &domain.PerformanceSummary{
		EventID:          eventID,
		EngagementCounts: counts,
		LastUpdated:      time.Now(),
		Version:          uint64(time.Now().UnixNano()),
	}

	for _, m := range metrics {
		summary.Summary.TotalViews += m.Views
		summary.Summary.TotalRegistrations += m.Registrations
		summary.Summary.TotalRevenue += m.Revenue
		summary.ViewsTrend = append(summary.ViewsTrend, domain.TrendPoint{Date: m.Date, Count: m.Views})
		summary.RegistrationsTrend = append(summary.RegistrationsTrend, domain.TrendPoint{Date: m.Date, Count: m.Registrations})
		summary.RevenueTrend = append(summary.RevenueTrend, domain.RevenuePoint{Date: m.Date, Amount: m.Revenue})
	}
	summary.Summary.ConversionRate = analytics.Rate(
		float64(summary.Summary.TotalRegistrations), float64(summary.Summary.TotalViews))

	fb := analytics.SummarizeFeedback(feedback)
	summary.Summary.AverageRating = fb.AverageRating.Overall
	summary.Summary.TotalFeedbacks = uint64(fb.TotalFeedbacks)
	summary.Summary.NetPromoterScore = fb.NetPromoterScore
	summary.TopPerformingAspects, summary.AreasForImprovement = analytics.AspectScores(fb.AverageRating)

	attended := applications[domain.ApplicationAttended]
	registered := applications[domain.ApplicationRegistered]
	summary.Summary.TotalAttendees = attended
	summary.Summary.AttendanceRate = analytics.Rate(float64(attended), float64(registered))

	if err := s.store.UpsertSummary(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to upsert performance summary: %w", err)
	}

	s.log.Info("Performance summary rebuilt",
		zap.String("event_id", eventID),
		zap.Uint64("total_views", summary.Summary.TotalViews),
		zap.Uint64("total_registrations", summary.Summary.TotalRegistrations))

	return summary, nil
}

// GetPerformanceSummary returns the persisted summary, or nil when absent
func (s *AnalyticsService) GetPerformanceSummary(ctx context.Context, eventID string) (*domain.PerformanceSummary, error) {
	summary, err := s.store.GetSummary(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load performance summary: %w", err)
	}
	return summary, nil
}
