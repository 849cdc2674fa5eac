package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

// Granularity selects the bucketing of a trend series.
type Granularity string

const (
	GranularityHourly  Granularity = "hourly"
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity validates a caller-supplied granularity string. The empty
// string defaults to daily.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "":
		return GranularityDaily, nil
	case GranularityHourly, GranularityDaily, GranularityWeekly, GranularityMonthly:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownGranularity, s)
}

// TrendBucket is one bucket of a re-bucketed metric series: the daily metric
// counters summed over the bucket, keyed by the bucket's representative date.
type TrendBucket struct {
	Date           time.Time `json:"date"`
	Views          uint64    `json:"views"`
	Registrations  uint64    `json:"registrations"`
	Revenue        float64   `json:"revenue"`
	UniqueVisitors uint64    `json:"unique_visitors"`
	ConversionRate float64   `json:"conversion_rate"`
}

// DailyTrends maps daily metrics one-to-one into trend buckets, preserving
// each day's stored conversion rate.
func DailyTrends(metrics []domain.DailyMetric) []TrendBucket {
	buckets := make([]TrendBucket, 0, len(metrics))
	for _, m := range metrics {
		buckets = append(buckets, TrendBucket{
			Date:           m.Date,
			Views:          m.Views,
			Registrations:  m.Registrations,
			Revenue:        m.Revenue,
			UniqueVisitors: m.UniqueVisitors,
			ConversionRate: m.ConversionRate,
		})
	}
	sortBuckets(buckets)
	return buckets
}

// WeeklyTrends buckets daily metrics into the Sunday-based week containing
// each day, sums the counters, and recomputes each bucket's conversion rate
// from the summed views and registrations.
func WeeklyTrends(metrics []domain.DailyMetric) []TrendBucket {
	return rebucket(metrics, weekStart)
}

// MonthlyTrends buckets daily metrics by calendar month, keyed by the first
// of the month, with the same summation rule as WeeklyTrends.
func MonthlyTrends(metrics []domain.DailyMetric) []TrendBucket {
	return rebucket(metrics, monthStart)
}

func rebucket(metrics []domain.DailyMetric, bucketOf func(time.Time) time.Time) []TrendBucket {
	byDate := make(map[time.Time]*TrendBucket)

	for _, m := range metrics {
		key := bucketOf(m.Date)
		bucket := byDate[key]
		if bucket == nil {
			bucket = &TrendBucket{Date: key}
			byDate[key] = bucket
		}
		bucket.Views += m.Views
		bucket.Registrations += m.Registrations
		bucket.Revenue += m.Revenue
		bucket.UniqueVisitors += m.UniqueVisitors
	}

	buckets := make([]TrendBucket, 0, len(byDate))
	for _, bucket := range byDate {
		bucket.ConversionRate = Rate(float64(bucket.Registrations), float64(bucket.Views))
		buckets = append(buckets, *bucket)
	}
	sortBuckets(buckets)
	return buckets
}

// weekStart returns the Sunday at or before d, truncated to midnight UTC.
func weekStart(d time.Time) time.Time {
	day := dayStart(d)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func monthStart(d time.Time) time.Time {
	d = d.UTC()
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func dayStart(d time.Time) time.Time {
	d = d.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func sortBuckets(buckets []TrendBucket) {
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})
}
