package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

func entry(user string, stage domain.FunnelStage, ts time.Time) domain.FunnelEntry {
	return domain.FunnelEntry{EventID: "event-1", UserID: user, Stage: stage, Timestamp: ts}
}

func TestComputeFunnel_ThreeUserScenario(t *testing.T) {
	base := day(2025, 3, 10)
	entries := []domain.FunnelEntry{
		entry("a", domain.StageRegistered, base),
		entry("a", domain.StageStarted, base.Add(time.Hour)),
		entry("a", domain.StageCompleted, base.Add(2*time.Hour)),
		entry("b", domain.StageRegistered, base),
		entry("b", domain.StageStarted, base.Add(time.Hour)),
		entry("c", domain.StageRegistered, base),
	}

	metrics := ComputeFunnel(entries)

	assert.Equal(t, StageCounts{Registered: 3, Started: 2, Completed: 1}, metrics.StageCounts)
	assert.Equal(t, 66.67, metrics.ConversionRates.RegisteredToStarted)
	assert.Equal(t, 50.0, metrics.ConversionRates.StartedToCompleted)
	assert.Equal(t, 33.33, metrics.ConversionRates.OverallCompletion)
	assert.Equal(t, DropoffCounts{AfterRegistration: 1, AfterStarted: 1}, metrics.DropoffCounts)
	assert.Equal(t, 33.33, metrics.DropoffRates.AfterRegistration)
	assert.Equal(t, 50.0, metrics.DropoffRates.AfterStarted)
}

func TestComputeFunnel_DuplicateEntriesCountOnce(t *testing.T) {
	base := day(2025, 3, 10)
	entries := []domain.FunnelEntry{
		entry("a", domain.StageRegistered, base),
		entry("a", domain.StageRegistered, base.Add(time.Minute)),
		entry("a", domain.StageStarted, base.Add(time.Hour)),
	}

	metrics := ComputeFunnel(entries)

	assert.Equal(t, StageCounts{Registered: 1, Started: 1}, metrics.StageCounts)
}

func TestComputeFunnel_NonMonotonicStages(t *testing.T) {
	// A completed entry without a started one is real-world data; the
	// calculator counts presence per stage and never enforces a chain.
	base := day(2025, 3, 10)
	entries := []domain.FunnelEntry{
		entry("a", domain.StageRegistered, base),
		entry("a", domain.StageCompleted, base.Add(time.Hour)),
		entry("b", domain.StageCompleted, base),
	}

	metrics := ComputeFunnel(entries)

	assert.Equal(t, StageCounts{Registered: 1, Started: 0, Completed: 2}, metrics.StageCounts)
	assert.Equal(t, 0.0, metrics.ConversionRates.RegisteredToStarted)
	assert.Equal(t, 0.0, metrics.ConversionRates.StartedToCompleted)
	assert.Equal(t, 200.0, metrics.ConversionRates.OverallCompletion)
	assert.Equal(t, DropoffCounts{AfterRegistration: 1, AfterStarted: -2}, metrics.DropoffCounts)
}

func TestComputeFunnel_Empty(t *testing.T) {
	metrics := ComputeFunnel(nil)

	assert.Equal(t, StageCounts{}, metrics.StageCounts)
	assert.Equal(t, FunnelConversionRates{}, metrics.ConversionRates)
	assert.Equal(t, DropoffRates{}, metrics.DropoffRates)
}

func TestFunnelTrends_DailyUniqueUsers(t *testing.T) {
	d1 := day(2025, 3, 10)
	d2 := day(2025, 3, 11)
	entries := []domain.FunnelEntry{
		entry("a", domain.StageRegistered, d1.Add(9*time.Hour)),
		entry("b", domain.StageRegistered, d1.Add(10*time.Hour)),
		entry("b", domain.StageRegistered, d1.Add(11*time.Hour)),
		entry("a", domain.StageStarted, d2.Add(time.Hour)),
		entry("a", domain.StageCompleted, d2.Add(2*time.Hour)),
	}

	points := FunnelTrends(entries)

	assert.Len(t, points, 2)
	assert.Equal(t, d1, points[0].Date)
	assert.Equal(t, 2, points[0].Registered)
	assert.Equal(t, 0, points[0].Started)
	assert.Equal(t, d2, points[1].Date)
	assert.Equal(t, 1, points[1].Started)
	assert.Equal(t, 1, points[1].Completed)
}
