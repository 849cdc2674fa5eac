package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

func TestAnalyzeDropoff_Archetypes(t *testing.T) {
	base := day(2025, 3, 10)
	entries := []domain.FunnelEntry{
		entry("a", domain.StageRegistered, base),
		entry("a", domain.StageStarted, base.Add(2*time.Hour)),
		entry("a", domain.StageCompleted, base.Add(6*time.Hour)),
		entry("b", domain.StageRegistered, base),
		entry("b", domain.StageStarted, base.Add(time.Hour)),
		entry("c", domain.StageRegistered, base),
		entry("d", domain.StageRegistered, base),
	}

	analysis := AnalyzeDropoff(entries)

	assert.Equal(t, 1, analysis.JourneyTypes.RegisteredStartedCompleted)
	assert.Equal(t, 1, analysis.JourneyTypes.RegisteredStarted)
	assert.Equal(t, 2, analysis.JourneyTypes.RegisteredOnly)
}

func TestAnalyzeDropoff_DropoffPointPercentages(t *testing.T) {
	base := day(2025, 3, 10)
	entries := []domain.FunnelEntry{
		entry("a", domain.StageRegistered, base),
		entry("a", domain.StageStarted, base.Add(time.Hour)),
		entry("a", domain.StageCompleted, base.Add(2*time.Hour)),
		entry("b", domain.StageRegistered, base),
		entry("c", domain.StageRegistered, base),
	}

	analysis := AnalyzeDropoff(entries)

	// Percentages are over the classified-user total, not the event population.
	assert.Len(t, analysis.DropoffPoints, 2)
	assert.Equal(t, "after_registration", analysis.DropoffPoints[0].Stage)
	assert.Equal(t, 2, analysis.DropoffPoints[0].Count)
	assert.Equal(t, 66.67, analysis.DropoffPoints[0].Percentage)
	assert.Equal(t, "after_started", analysis.DropoffPoints[1].Stage)
	assert.Equal(t, 0, analysis.DropoffPoints[1].Count)
	assert.Equal(t, 0.0, analysis.DropoffPoints[1].Percentage)
}

func TestAnalyzeDropoff_StageLatencies(t *testing.T) {
	base := day(2025, 3, 10)
	entries := []domain.FunnelEntry{
		// 2h to start, 4h to complete.
		entry("a", domain.StageRegistered, base),
		entry("a", domain.StageStarted, base.Add(2*time.Hour)),
		entry("a", domain.StageCompleted, base.Add(6*time.Hour)),
		// 4h to start, 2h to complete.
		entry("b", domain.StageRegistered, base),
		entry("b", domain.StageStarted, base.Add(4*time.Hour)),
		entry("b", domain.StageCompleted, base.Add(6*time.Hour)),
		// Incomplete journey contributes nothing to the full-chain averages.
		entry("c", domain.StageRegistered, base),
		entry("c", domain.StageStarted, base.Add(30*time.Hour)),
	}

	analysis := AnalyzeDropoff(entries)

	assert.Equal(t, 3.0, analysis.AverageTimes.RegistrationToStart)
	assert.Equal(t, 3.0, analysis.AverageTimes.StartToCompletion)

	// Pairwise times do include user c's registered->started gap.
	assert.Equal(t, 12.0, analysis.ConversionTimes.AverageTimeToStart)
	assert.Equal(t, 3.0, analysis.ConversionTimes.AverageTimeToComplete)
}

func TestAnalyzeDropoff_UnregisteredUsersExcluded(t *testing.T) {
	// Users with no registered entry are dropped from classification
	// entirely. Documented boundary behavior, preserved from the original
	// reporting pipeline.
	base := day(2025, 3, 10)
	entries := []domain.FunnelEntry{
		entry("a", domain.StageRegistered, base),
		entry("ghost", domain.StageStarted, base),
		entry("ghost", domain.StageCompleted, base.Add(time.Hour)),
	}

	analysis := AnalyzeDropoff(entries)

	assert.Equal(t, 1, analysis.JourneyTypes.RegisteredOnly)
	assert.Equal(t, 0, analysis.JourneyTypes.RegisteredStarted)
	assert.Equal(t, 0, analysis.JourneyTypes.RegisteredStartedCompleted)
	assert.Equal(t, 100.0, analysis.DropoffPoints[0].Percentage)
	// The ghost user's pairwise gap still feeds conversion times.
	assert.Equal(t, 1.0, analysis.ConversionTimes.AverageTimeToComplete)
}

func TestAnalyzeDropoff_Empty(t *testing.T) {
	analysis := AnalyzeDropoff(nil)

	assert.Equal(t, JourneyCounts{}, analysis.JourneyTypes)
	assert.Equal(t, StageLatencies{}, analysis.AverageTimes)
	assert.Len(t, analysis.DropoffPoints, 2)
	assert.Equal(t, 0, analysis.DropoffPoints[0].Count)
	assert.Equal(t, 0.0, analysis.DropoffPoints[0].Percentage)
}

func TestAnalyzeDropoff_LatestTimestampWins(t *testing.T) {
	base := day(2025, 3, 10)
	entries := []domain.FunnelEntry{
		entry("a", domain.StageRegistered, base),
		entry("a", domain.StageStarted, base.Add(time.Hour)),
		entry("a", domain.StageStarted, base.Add(3*time.Hour)),
		entry("a", domain.StageCompleted, base.Add(5*time.Hour)),
	}

	analysis := AnalyzeDropoff(entries)

	assert.Equal(t, 3.0, analysis.AverageTimes.RegistrationToStart)
	assert.Equal(t, 2.0, analysis.AverageTimes.StartToCompletion)
}
