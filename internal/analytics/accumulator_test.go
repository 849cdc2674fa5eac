package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

func newDayMetric() *domain.DailyMetric {
	return &domain.DailyMetric{
		EventID: "event-1",
		Date:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestApplyEngagement_View(t *testing.T) {
	m := newDayMetric()

	err := ApplyEngagement(m, domain.EngagementView, domain.EngagementMetadata{})

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), m.Views)
	assert.Equal(t, uint64(1), m.PageViews)
	assert.Equal(t, uint64(0), m.UniqueVisitors)
}

func TestApplyEngagement_ViewUniqueVisitor(t *testing.T) {
	m := newDayMetric()

	err := ApplyEngagement(m, domain.EngagementView, domain.EngagementMetadata{IsUniqueVisitor: true})

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), m.UniqueVisitors)
}

func TestApplyEngagement_RegistrationWithRevenue(t *testing.T) {
	m := newDayMetric()

	err := ApplyEngagement(m, domain.EngagementRegistration, domain.EngagementMetadata{Revenue: 49.99})

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), m.Registrations)
	assert.Equal(t, 49.99, m.Revenue)
}

func TestApplyEngagement_CancellationWithRefund(t *testing.T) {
	m := newDayMetric()
	m.Revenue = 100

	err := ApplyEngagement(m, domain.EngagementCancellation, domain.EngagementMetadata{Refund: 30})

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), m.Cancellations)
	assert.Equal(t, 70.0, m.Revenue)
}

func TestApplyEngagement_ConversionRateRecomputed(t *testing.T) {
	m := newDayMetric()

	for i := 0; i < 4; i++ {
		assert.NoError(t, ApplyEngagement(m, domain.EngagementView, domain.EngagementMetadata{}))
	}
	assert.Equal(t, 0.0, m.ConversionRate)

	assert.NoError(t, ApplyEngagement(m, domain.EngagementRegistration, domain.EngagementMetadata{}))
	assert.Equal(t, 25.0, m.ConversionRate)

	// Recomputed after every accumulation, including ones without deltas.
	assert.NoError(t, ApplyEngagement(m, domain.EngagementView, domain.EngagementMetadata{}))
	assert.Equal(t, 20.0, m.ConversionRate)
}

func TestApplyEngagement_ZeroViewsZeroRate(t *testing.T) {
	m := newDayMetric()

	err := ApplyEngagement(m, domain.EngagementRegistration, domain.EngagementMetadata{})

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), m.Registrations)
	assert.Equal(t, 0.0, m.ConversionRate)
}

func TestApplyEngagement_FactOnlyTypes(t *testing.T) {
	m := newDayMetric()

	for _, typ := range []domain.EngagementType{
		domain.EngagementAttendance,
		domain.EngagementRating,
		domain.EngagementShare,
		domain.EngagementBookmark,
	} {
		assert.NoError(t, ApplyEngagement(m, typ, domain.EngagementMetadata{}))
	}

	assert.Equal(t, uint64(0), m.Views)
	assert.Equal(t, uint64(0), m.Registrations)
	assert.Equal(t, uint64(0), m.Cancellations)
}

func TestApplyEngagement_UnknownType(t *testing.T) {
	m := newDayMetric()

	err := ApplyEngagement(m, "impression", domain.EngagementMetadata{})

	assert.ErrorIs(t, err, domain.ErrUnknownEngagementType)
	assert.Equal(t, uint64(0), m.Views)
}
