package domain

import "time"

// DailyMetric holds the per-day counters for one event. There is at most one
// record per (event, day); updates go through the metric accumulator and are
// persisted as versioned upserts.
type DailyMetric struct {
	EventID        string    `json:"event_id"`
	Date           time.Time `json:"date"`
	Views          uint64    `json:"views"`
	Registrations  uint64    `json:"registrations"`
	Cancellations  uint64    `json:"cancellations"`
	Revenue        float64   `json:"revenue"`
	UniqueVisitors uint64    `json:"unique_visitors"`
	PageViews      uint64    `json:"page_views"`
	ConversionRate float64   `json:"conversion_rate"`
	Version        uint64    `json:"-"`
}

// TrendPoint is one dated counter sample in a summary trend array.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Count uint64    `json:"count"`
}

// RevenuePoint is one dated revenue sample in a summary trend array.
type RevenuePoint struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// AspectScore scores one rated feedback dimension (content, organization,
// venue, networking) for the summary's qualitative lists.
type AspectScore struct {
	Aspect string  `json:"aspect"`
	Score  float64 `json:"score"`
}

// SummaryTotals is the aggregated numeric block of a performance summary.
type SummaryTotals struct {
	TotalViews         uint64  `json:"total_views"`
	TotalRegistrations uint64  `json:"total_registrations"`
	TotalAttendees     uint64  `json:"total_attendees"`
	TotalRevenue       float64 `json:"total_revenue"`
	AverageRating      float64 `json:"average_rating"`
	TotalFeedbacks     uint64  `json:"total_feedbacks"`
	ConversionRate     float64 `json:"conversion_rate"`
	AttendanceRate     float64 `json:"attendance_rate"`
	NetPromoterScore   float64 `json:"net_promoter_score"`
}

// PerformanceSummary is the single derived aggregate persisted per event.
// Every field except LastUpdated is a deterministic function of the stored
// records, so rebuilding with unchanged inputs is idempotent.
type PerformanceSummary struct {
	EventID              string                    `json:"event_id"`
	Summary              SummaryTotals             `json:"summary"`
	EngagementCounts     map[EngagementType]uint64 `json:"engagement_counts"`
	ViewsTrend           []TrendPoint              `json:"views_trend"`
	RegistrationsTrend   []TrendPoint              `json:"registrations_trend"`
	RevenueTrend         []RevenuePoint            `json:"revenue_trend"`
	TopPerformingAspects []AspectScore             `json:"top_performing_aspects"`
	AreasForImprovement  []AspectScore             `json:"areas_for_improvement"`
	LastUpdated          time.Time                 `json:"last_updated"`
	Version              uint64                    `json:"-"`
}
