package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/analytics"
	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

// Repository implements repository.Store for ClickHouse. Append-only facts
// live in plain MergeTree tables; everything upserted (daily metrics,
// feedback, summaries) is a ReplacingMergeTree keyed by its unique tuple and
// read with FINAL.
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS engagement_events (
		engagement_id String,
		event_id String,
		user_id String,
		engagement_type LowCardinality(String),
		timestamp DateTime64(3),
		metadata String,
		processed_at DateTime64(3) DEFAULT now64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PRIMARY KEY (engagement_id)
	ORDER BY (engagement_id, timestamp)
	PARTITION BY toYYYYMM(timestamp)
	SETTINGS index_granularity = 8192`,

	`CREATE TABLE IF NOT EXISTS daily_metrics (
		event_id String,
		date Date,
		views UInt64,
		registrations UInt64,
		cancellations UInt64,
		revenue Float64,
		unique_visitors UInt64,
		page_views UInt64,
		conversion_rate Float64,
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	ORDER BY (event_id, date)`,

	`CREATE TABLE IF NOT EXISTS event_feedback (
		event_id String,
		user_id String,
		rating_overall Float64,
		rating_content Float64,
		rating_organization Float64,
		rating_venue Float64,
		rating_networking Float64,
		liked Array(String),
		disliked Array(String),
		suggestions String,
		would_recommend Bool,
		would_attend_again Bool,
		attendance_status LowCardinality(String),
		submitted_at DateTime64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	ORDER BY (event_id, user_id)`,

	`CREATE TABLE IF NOT EXISTS funnel_entries (
		event_id String,
		user_id String,
		funnel_stage LowCardinality(String),
		timestamp DateTime64(3)
	) ENGINE = MergeTree
	ORDER BY (event_id, user_id, timestamp)`,

	`CREATE TABLE IF NOT EXISTS applications (
		event_id String,
		user_id String,
		status LowCardinality(String),
		applied_at DateTime64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	ORDER BY (event_id, user_id)`,

	`CREATE TABLE IF NOT EXISTS performance_summaries (
		event_id String,
		total_views UInt64,
		total_registrations UInt64,
		total_attendees UInt64,
		total_revenue Float64,
		average_rating Float64,
		total_feedbacks UInt64,
		conversion_rate Float64,
		attendance_rate Float64,
		net_promoter_score Float64,
		engagement_counts String,
		trends String,
		top_aspects String,
		improvement_areas String,
		last_updated DateTime64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	ORDER BY event_id`,
}

// InitSchema creates the analytics tables if they don't exist
func (r *Repository) InitSchema(ctx context.Context) error {
	for _, query := range schema {
		if err := r.client.Conn().Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to create analytics table: %w", err)
		}
	}
	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// InsertEngagements inserts a batch of engagement facts
func (r *Repository) InsertEngagements(ctx context.Context, events []*domain.EngagementEvent) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO engagement_events")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	insertedCount := 0
	for _, event := range events {
		if event.Version == 0 {
			event.Version = uint64(time.Now().UnixNano())
		}
		if event.ProcessedAt.IsZero() {
			event.ProcessedAt = time.Now()
		}

		metadataJSON, err := json.Marshal(event.Metadata)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal engagement metadata: %w", err)
		}

		err = batch.Append(
			event.EngagementID,
			event.EventID,
			event.UserID,
			string(event.Type),
			event.Timestamp,
			string(metadataJSON),
			event.ProcessedAt,
			event.Version,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to append engagement to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// EngagementCountsByType returns per-type engagement totals for an event
func (r *Repository) EngagementCountsByType(ctx context.Context, eventID string) (map[domain.EngagementType]uint64, error) {
	query := `
		SELECT engagement_type, count() AS total
		FROM engagement_events FINAL
		WHERE event_id = ?
		GROUP BY engagement_type
	`

	rows, err := r.client.Conn().Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query engagement counts: %w", err)
	}
	defer r.closeRows(rows, "engagement counts")

	counts := make(map[domain.EngagementType]uint64)
	for rows.Next() {
		var typ string
		var total uint64
		if err := rows.Scan(&typ, &total); err != nil {
			return nil, fmt.Errorf("failed to scan engagement count row: %w", err)
		}
		counts[domain.EngagementType(typ)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating engagement count rows: %w", err)
	}

	return counts, nil
}

// HourlyTrends aggregates raw engagement facts into hourly buckets. The
// conversion rate per bucket is computed in Go so the zero-denominator rule
// matches the rest of the engine.
func (r *Repository) HourlyTrends(ctx context.Context, eventID string, from, to time.Time) ([]analytics.TrendBucket, error) {
	where := "WHERE event_id = ?"
	args := []interface{}{eventID}
	if !from.IsZero() {
		where += " AND timestamp >= ?"
		args = append(args, from)
	}
	if !to.IsZero() {
		where += " AND timestamp <= ?"
		args = append(args, to)
	}

	query := fmt.Sprintf(`
		SELECT
			toStartOfHour(timestamp) AS bucket,
			countIf(engagement_type = 'view') AS views,
			countIf(engagement_type = 'registration') AS registrations,
			sumIf(JSONExtractFloat(metadata, 'revenue'), engagement_type = 'registration')
				- sumIf(JSONExtractFloat(metadata, 'refund'), engagement_type = 'cancellation') AS revenue,
			uniqIf(user_id, engagement_type = 'view') AS unique_visitors
		FROM engagement_events FINAL
		%s
		GROUP BY bucket
		ORDER BY bucket ASC
	`, where)

	rows, err := r.client.Conn().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hourly trends: %w", err)
	}
	defer r.closeRows(rows, "hourly trends")

	var buckets []analytics.TrendBucket
	for rows.Next() {
		var b analytics.TrendBucket
		if err := rows.Scan(&b.Date, &b.Views, &b.Registrations, &b.Revenue, &b.UniqueVisitors); err != nil {
			return nil, fmt.Errorf("failed to scan hourly trend row: %w", err)
		}
		b.ConversionRate = analytics.Rate(float64(b.Registrations), float64(b.Views))
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hourly trend rows: %w", err)
	}

	return buckets, nil
}

// GetDailyMetric returns the metric row for (event, day), or nil when absent
func (r *Repository) GetDailyMetric(ctx context.Context, eventID string, day time.Time) (*domain.DailyMetric, error) {
	query := `
		SELECT event_id, date, views, registrations, cancellations,
			revenue, unique_visitors, page_views, conversion_rate, version
		FROM daily_metrics FINAL
		WHERE event_id = ? AND date = ?
	`

	rows, err := r.client.Conn().Query(ctx, query, eventID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily metric: %w", err)
	}
	defer r.closeRows(rows, "daily metric")

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error reading daily metric row: %w", err)
		}
		return nil, nil
	}

	var m domain.DailyMetric
	if err := scanDailyMetric(rows, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpsertDailyMetric writes a new version of the (event, day) metric row
func (r *Repository) UpsertDailyMetric(ctx context.Context, metric *domain.DailyMetric) error {
	if metric.Version == 0 {
		metric.Version = uint64(time.Now().UnixNano())
	}

	query := `
		INSERT INTO daily_metrics
			(event_id, date, views, registrations, cancellations,
			revenue, unique_visitors, page_views, conversion_rate, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	err := r.client.Conn().Exec(ctx, query,
		metric.EventID,
		metric.Date,
		metric.Views,
		metric.Registrations,
		metric.Cancellations,
		metric.Revenue,
		metric.UniqueVisitors,
		metric.PageViews,
		metric.ConversionRate,
		metric.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily metric: %w", err)
	}
	return nil
}

// ListDailyMetrics returns an event's daily metrics ordered by date
func (r *Repository) ListDailyMetrics(ctx context.Context, eventID string, from, to time.Time) ([]domain.DailyMetric, error) {
	where := "WHERE event_id = ?"
	args := []interface{}{eventID}
	if !from.IsZero() {
		where += " AND date >= ?"
		args = append(args, from)
	}
	if !to.IsZero() {
		where += " AND date <= ?"
		args = append(args, to)
	}

	query := fmt.Sprintf(`
		SELECT event_id, date, views, registrations, cancellations,
			revenue, unique_visitors, page_views, conversion_rate, version
		FROM daily_metrics FINAL
		%s
		ORDER BY date ASC
	`, where)

	rows, err := r.client.Conn().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily metrics: %w", err)
	}
	defer r.closeRows(rows, "daily metrics")

	var metrics []domain.DailyMetric
	for rows.Next() {
		var m domain.DailyMetric
		if err := scanDailyMetric(rows, &m); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily metric rows: %w", err)
	}

	return metrics, nil
}

func scanDailyMetric(rows driver.Rows, m *domain.DailyMetric) error {
	err := rows.Scan(
		&m.EventID,
		&m.Date,
		&m.Views,
		&m.Registrations,
		&m.Cancellations,
		&m.Revenue,
		&m.UniqueVisitors,
		&m.PageViews,
		&m.ConversionRate,
		&m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to scan daily metric row: %w", err)
	}
	return nil
}

// InsertFeedback inserts one feedback record
func (r *Repository) InsertFeedback(ctx context.Context, record *domain.FeedbackRecord) error {
	if record.Version == 0 {
		record.Version = uint64(time.Now().UnixNano())
	}
	if record.SubmittedAt.IsZero() {
		record.SubmittedAt = time.Now()
	}

	liked := record.Liked
	if liked == nil {
		liked = []string{}
	}
	disliked := record.Disliked
	if disliked == nil {
		disliked = []string{}
	}

	query := `
		INSERT INTO event_feedback
			(event_id, user_id, rating_overall, rating_content, rating_organization,
			rating_venue, rating_networking, liked, disliked, suggestions,
			would_recommend, would_attend_again, attendance_status, submitted_at, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	err := r.client.Conn().Exec(ctx, query,
		record.EventID,
		record.UserID,
		record.Rating.Overall,
		record.Rating.Content,
		record.Rating.Organization,
		record.Rating.Venue,
		record.Rating.Networking,
		liked,
		disliked,
		record.Suggestions,
		record.WouldRecommend,
		record.WouldAttendAgain,
		string(record.AttendanceStatus),
		record.SubmittedAt,
		record.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

// FeedbackExists reports whether the (event, user) pair already has feedback
func (r *Repository) FeedbackExists(ctx context.Context, eventID, userID string) (bool, error) {
	query := `
		SELECT count()
		FROM event_feedback FINAL
		WHERE event_id = ? AND user_id = ?
	`

	var count uint64
	row := r.client.Conn().QueryRow(ctx, query, eventID, userID)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check feedback existence: %w", err)
	}
	return count > 0, nil
}

// ListFeedback returns an event's feedback records
func (r *Repository) ListFeedback(ctx context.Context, eventID string) ([]domain.FeedbackRecord, error) {
	query := `
		SELECT event_id, user_id, rating_overall, rating_content, rating_organization,
			rating_venue, rating_networking, liked, disliked, suggestions,
			would_recommend, would_attend_again, attendance_status, submitted_at, version
		FROM event_feedback FINAL
		WHERE event_id = ?
		ORDER BY submitted_at ASC
	`

	rows, err := r.client.Conn().Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer r.closeRows(rows, "feedback")

	var records []domain.FeedbackRecord
	for rows.Next() {
		var rec domain.FeedbackRecord
		var status string
		err := rows.Scan(
			&rec.EventID,
			&rec.UserID,
			&rec.Rating.Overall,
			&rec.Rating.Content,
			&rec.Rating.Organization,
			&rec.Rating.Venue,
			&rec.Rating.Networking,
			&rec.Liked,
			&rec.Disliked,
			&rec.Suggestions,
			&rec.WouldRecommend,
			&rec.WouldAttendAgain,
			&status,
			&rec.SubmittedAt,
			&rec.Version,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		rec.AttendanceStatus = domain.AttendanceStatus(status)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return records, nil
}

// InsertFunnelEntry appends one funnel stage entry
func (r *Repository) InsertFunnelEntry(ctx context.Context, entry *domain.FunnelEntry) error {
	query := `
		INSERT INTO funnel_entries (event_id, user_id, funnel_stage, timestamp)
		VALUES (?, ?, ?, ?)
	`

	err := r.client.Conn().Exec(ctx, query,
		entry.EventID,
		entry.UserID,
		string(entry.Stage),
		entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert funnel entry: %w", err)
	}
	return nil
}

// ListFunnelEntries returns an event's funnel entries ordered by time
func (r *Repository) ListFunnelEntries(ctx context.Context, eventID string, from, to time.Time) ([]domain.FunnelEntry, error) {
	where := "WHERE event_id = ?"
	args := []interface{}{eventID}
	if !from.IsZero() {
		where += " AND timestamp >= ?"
		args = append(args, from)
	}
	if !to.IsZero() {
		where += " AND timestamp <= ?"
		args = append(args, to)
	}

	query := fmt.Sprintf(`
		SELECT event_id, user_id, funnel_stage, timestamp
		FROM funnel_entries
		%s
		ORDER BY timestamp ASC
	`, where)

	rows, err := r.client.Conn().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query funnel entries: %w", err)
	}
	defer r.closeRows(rows, "funnel entries")

	var entries []domain.FunnelEntry
	for rows.Next() {
		var entry domain.FunnelEntry
		var stage string
		if err := rows.Scan(&entry.EventID, &entry.UserID, &stage, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan funnel entry row: %w", err)
		}
		entry.Stage = domain.FunnelStage(stage)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating funnel entry rows: %w", err)
	}

	return entries, nil
}

// ApplicationStatusCounts groups an event's applications by status
func (r *Repository) ApplicationStatusCounts(ctx context.Context, eventID string) (map[domain.ApplicationStatus]uint64, error) {
	query := `
		SELECT status, count() AS total
		FROM applications FINAL
		WHERE event_id = ?
		GROUP BY status
	`

	rows, err := r.client.Conn().Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query application status counts: %w", err)
	}
	defer r.closeRows(rows, "application status counts")

	counts := make(map[domain.ApplicationStatus]uint64)
	for rows.Next() {
		var status string
		var total uint64
		if err := rows.Scan(&status, &total); err != nil {
			return nil, fmt.Errorf("failed to scan application status row: %w", err)
		}
		counts[domain.ApplicationStatus(status)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application status rows: %w", err)
	}

	return counts, nil
}

// summaryDocument is the JSON layout of the summary's nested arrays, stored
// alongside the flat totals columns.
type summaryDocument struct {
	ViewsTrend         []domain.TrendPoint   `json:"views_trend"`
	RegistrationsTrend []domain.TrendPoint   `json:"registrations_trend"`
	RevenueTrend       []domain.RevenuePoint `json:"revenue_trend"`
}

// UpsertSummary writes a new version of the event's performance summary
func (r *Repository) UpsertSummary(ctx context.Context, summary *domain.PerformanceSummary) error {
	if summary.Version == 0 {
		summary.Version = uint64(time.Now().UnixNano())
	}

	trendsJSON, err := json.Marshal(summaryDocument{
		ViewsTrend:         summary.ViewsTrend,
		RegistrationsTrend: summary.RegistrationsTrend,
		RevenueTrend:       summary.RevenueTrend,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal summary trends: %w", err)
	}
	countsJSON, err := json.Marshal(summary.EngagementCounts)
	if err != nil {
		return fmt.Errorf("failed to marshal engagement counts: %w", err)
	}
	topJSON, err := json.Marshal(summary.TopPerformingAspects)
	if err != nil {
		return fmt.Errorf("failed to marshal top aspects: %w", err)
	}
	improveJSON, err := json.Marshal(summary.AreasForImprovement)
	if err != nil {
		return fmt.Errorf("failed to marshal improvement areas: %w", err)
	}

	query := `
		INSERT INTO performance_summaries
			(event_id, total_views, total_registrations, total_attendees, total_revenue,
			average_rating, total_feedbacks, conversion_rate, attendance_rate,
			net_promoter_score, engagement_counts, trends, top_aspects,
			improvement_areas, last_updated, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	err = r.client.Conn().Exec(ctx, query,
		summary.EventID,
		summary.Summary.TotalViews,
		summary.Summary.TotalRegistrations,
		summary.Summary.TotalAttendees,
		summary.Summary.TotalRevenue,
		summary.Summary.AverageRating,
		summary.Summary.TotalFeedbacks,
		summary.Summary.ConversionRate,
		summary.Summary.AttendanceRate,
		summary.Summary.NetPromoterScore,
		string(countsJSON),
		string(trendsJSON),
		string(topJSON),
		string(improveJSON),
		summary.LastUpdated,
		summary.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert performance summary: %w", err)
	}
	return nil
}

// GetSummary returns the persisted summary for an event, or nil when absent
func (r *Repository) GetSummary(ctx context.Context, eventID string) (*domain.PerformanceSummary, error) {
	query := `
		SELECT event_id, total_views, total_registrations, total_attendees, total_revenue,
			average_rating, total_feedbacks, conversion_rate, attendance_rate,
			net_promoter_score, engagement_counts, trends, top_aspects,
			improvement_areas, last_updated, version
		FROM performance_summaries FINAL
		WHERE event_id = ?
	`

	rows, err := r.client.Conn().Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance summary: %w", err)
	}
	defer r.closeRows(rows, "performance summary")

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error reading performance summary row: %w", err)
		}
		return nil, nil
	}

	var summary domain.PerformanceSummary
	var countsJSON, trendsJSON, topJSON, improveJSON string
	err = rows.Scan(
		&summary.EventID,
		&summary.Summary.TotalViews,
		&summary.Summary.TotalRegistrations,
		&summary.Summary.TotalAttendees,
		&summary.Summary.TotalRevenue,
		&summary.Summary.AverageRating,
		&summary.Summary.TotalFeedbacks,
		&summary.Summary.ConversionRate,
		&summary.Summary.AttendanceRate,
		&summary.Summary.NetPromoterScore,
		&countsJSON,
		&trendsJSON,
		&topJSON,
		&improveJSON,
		&summary.LastUpdated,
		&summary.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan performance summary row: %w", err)
	}

	var doc summaryDocument
	if err := json.Unmarshal([]byte(trendsJSON), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary trends: %w", err)
	}
	summary.ViewsTrend = doc.ViewsTrend
	summary.RegistrationsTrend = doc.RegistrationsTrend
	summary.RevenueTrend = doc.RevenueTrend

	if err := json.Unmarshal([]byte(countsJSON), &summary.EngagementCounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal engagement counts: %w", err)
	}
	if err := json.Unmarshal([]byte(topJSON), &summary.TopPerformingAspects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal top aspects: %w", err)
	}
	if err := json.Unmarshal([]byte(improveJSON), &summary.AreasForImprovement); err != nil {
		return nil, fmt.Errorf("failed to unmarshal improvement areas: %w", err)
	}

	return &summary, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}

func (r *Repository) closeRows(rows driver.Rows, what string) {
	if err := rows.Close(); err != nil {
		r.log.Error("Failed to close rows", zap.String("query", what), zap.Error(err))
	}
}
