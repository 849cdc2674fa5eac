package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity("")
	assert.NoError(t, err)
	assert.Equal(t, GranularityDaily, g)

	g, err = ParseGranularity("weekly")
	assert.NoError(t, err)
	assert.Equal(t, GranularityWeekly, g)

	_, err = ParseGranularity("quarterly")
	assert.ErrorIs(t, err, domain.ErrUnknownGranularity)
}

func TestWeeklyTrends_SingleWeek(t *testing.T) {
	// Mon Mar 10, Tue Mar 11 and Wed Mar 12 2025 share the Sunday Mar 9 week.
	metrics := []domain.DailyMetric{
		{EventID: "e", Date: day(2025, 3, 10), Views: 100, Registrations: 20},
		{EventID: "e", Date: day(2025, 3, 11), Views: 150, Registrations: 45},
		{EventID: "e", Date: day(2025, 3, 12), Views: 80, Registrations: 10},
	}

	buckets := WeeklyTrends(metrics)

	assert.Len(t, buckets, 1)
	assert.Equal(t, day(2025, 3, 9), buckets[0].Date)
	assert.Equal(t, uint64(330), buckets[0].Views)
	assert.Equal(t, uint64(75), buckets[0].Registrations)
	assert.Equal(t, 22.73, buckets[0].ConversionRate)
}

func TestWeeklyTrends_SumPreservation(t *testing.T) {
	metrics := []domain.DailyMetric{
		{Date: day(2025, 3, 5), Views: 10, Registrations: 1, Revenue: 5, UniqueVisitors: 7},
		{Date: day(2025, 3, 8), Views: 20, Registrations: 2, Revenue: 10, UniqueVisitors: 9},
		{Date: day(2025, 3, 9), Views: 30, Registrations: 3, Revenue: 15, UniqueVisitors: 11},
		{Date: day(2025, 3, 15), Views: 40, Registrations: 4, Revenue: 20, UniqueVisitors: 13},
	}

	buckets := WeeklyTrends(metrics)

	var views, registrations, visitors uint64
	var revenue float64
	for _, b := range buckets {
		views += b.Views
		registrations += b.Registrations
		revenue += b.Revenue
		visitors += b.UniqueVisitors
	}

	assert.Equal(t, uint64(100), views)
	assert.Equal(t, uint64(10), registrations)
	assert.Equal(t, 50.0, revenue)
	assert.Equal(t, uint64(40), visitors)
}

func TestWeeklyTrends_SundayWeekStart(t *testing.T) {
	// Sat Mar 8 belongs to the week of Sun Mar 2; Sun Mar 9 starts a new one.
	metrics := []domain.DailyMetric{
		{Date: day(2025, 3, 8), Views: 1},
		{Date: day(2025, 3, 9), Views: 2},
		{Date: day(2025, 3, 15), Views: 3},
	}

	buckets := WeeklyTrends(metrics)

	assert.Len(t, buckets, 2)
	assert.Equal(t, day(2025, 3, 2), buckets[0].Date)
	assert.Equal(t, uint64(1), buckets[0].Views)
	assert.Equal(t, day(2025, 3, 9), buckets[1].Date)
	assert.Equal(t, uint64(5), buckets[1].Views)
}

func TestMonthlyTrends_BucketsByCalendarMonth(t *testing.T) {
	metrics := []domain.DailyMetric{
		{Date: day(2025, 4, 3), Views: 50, Registrations: 5, Revenue: 100},
		{Date: day(2025, 3, 28), Views: 100, Registrations: 10, Revenue: 200},
		{Date: day(2025, 3, 2), Views: 100, Registrations: 30, Revenue: 300},
	}

	buckets := MonthlyTrends(metrics)

	assert.Len(t, buckets, 2)
	assert.Equal(t, day(2025, 3, 1), buckets[0].Date)
	assert.Equal(t, uint64(200), buckets[0].Views)
	assert.Equal(t, uint64(40), buckets[0].Registrations)
	assert.Equal(t, 500.0, buckets[0].Revenue)
	assert.Equal(t, 20.0, buckets[0].ConversionRate)
	assert.Equal(t, day(2025, 4, 1), buckets[1].Date)
	assert.Equal(t, 10.0, buckets[1].ConversionRate)
}

func TestMonthlyTrends_ZeroViews(t *testing.T) {
	metrics := []domain.DailyMetric{
		{Date: day(2025, 3, 2), Registrations: 4},
	}

	buckets := MonthlyTrends(metrics)

	assert.Len(t, buckets, 1)
	assert.Equal(t, 0.0, buckets[0].ConversionRate)
}

func TestDailyTrends_IdentityMapping(t *testing.T) {
	metrics := []domain.DailyMetric{
		{Date: day(2025, 3, 11), Views: 7, Registrations: 2, ConversionRate: 28.57},
		{Date: day(2025, 3, 10), Views: 5, Registrations: 1, ConversionRate: 20},
	}

	buckets := DailyTrends(metrics)

	assert.Len(t, buckets, 2)
	// Sorted ascending and each day's stored rate preserved.
	assert.Equal(t, day(2025, 3, 10), buckets[0].Date)
	assert.Equal(t, 20.0, buckets[0].ConversionRate)
	assert.Equal(t, day(2025, 3, 11), buckets[1].Date)
	assert.Equal(t, 28.57, buckets[1].ConversionRate)
}

func TestWeeklyTrends_Empty(t *testing.T) {
	assert.Empty(t, WeeklyTrends(nil))
	assert.Empty(t, MonthlyTrends(nil))
	assert.Empty(t, DailyTrends(nil))
}
