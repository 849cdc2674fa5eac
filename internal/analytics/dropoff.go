package analytics

import (
	"time"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

// JourneyCounts buckets users into mutually exclusive journey archetypes.
// Every archetype requires a registered entry; users whose funnel history
// never includes one are not classified at all. That exclusion mirrors the
// behavior reporting has always had and is preserved deliberately rather
// than assumed to be a bug.
type JourneyCounts struct {
	RegisteredOnly             int `json:"registered_only"`
	RegisteredStarted          int `json:"registered_started"`
	RegisteredStartedCompleted int `json:"registered_started_completed"`
}

func (j JourneyCounts) total() int {
	return j.RegisteredOnly + j.RegisteredStarted + j.RegisteredStartedCompleted
}

// DropoffPoint reports how many classified users stalled at one funnel
// position, as a count and as a percentage of all classified users.
type DropoffPoint struct {
	Stage      string  `json:"stage"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StageLatencies are the mean gaps between consecutive stages, in hours,
// averaged over fully-completed journeys only.
type StageLatencies struct {
	RegistrationToStart float64 `json:"registration_to_start"`
	StartToCompletion   float64 `json:"start_to_completion"`
}

// ConversionTimes are the mean stage gaps in hours over every user who has
// both endpoints of the pair, regardless of whether the rest of their journey
// exists. Unlike StageLatencies this does not require the full chain.
type ConversionTimes struct {
	AverageTimeToStart    float64 `json:"average_time_to_start"`
	AverageTimeToComplete float64 `json:"average_time_to_complete"`
}

// DropoffAnalysis is the journey classification aggregate for one event.
type DropoffAnalysis struct {
	JourneyTypes    JourneyCounts   `json:"journey_types"`
	DropoffPoints   []DropoffPoint  `json:"dropoff_points"`
	AverageTimes    StageLatencies  `json:"average_times"`
	ConversionTimes ConversionTimes `json:"conversion_times"`
}

// AnalyzeDropoff builds one journey per user from their funnel entries and
// classifies it into exactly one archetype, checked in priority order:
// all three stages, then registered+started, then registered only. For each
// stage a user reached more than once the latest timestamp wins.
func AnalyzeDropoff(entries []domain.FunnelEntry) DropoffAnalysis {
	journeys := journeysByUser(entries)

	var analysis DropoffAnalysis
	types := &analysis.JourneyTypes

	var regToStart, startToComplete []float64
	var pairRegToStart, pairStartToComplete []float64

	for _, stamps := range journeys {
		registered, hasRegistered := stamps[domain.StageRegistered]
		started, hasStarted := stamps[domain.StageStarted]
		completed, hasCompleted := stamps[domain.StageCompleted]

		// Pairwise conversion times count any user with both endpoints.
		if hasRegistered && hasStarted {
			pairRegToStart = append(pairRegToStart, started.Sub(registered).Hours())
		}
		if hasStarted && hasCompleted {
			pairStartToComplete = append(pairStartToComplete, completed.Sub(started).Hours())
		}

		switch {
		case hasRegistered && hasStarted && hasCompleted:
			types.RegisteredStartedCompleted++
			regToStart = append(regToStart, started.Sub(registered).Hours())
			startToComplete = append(startToComplete, completed.Sub(started).Hours())
		case hasRegistered && hasStarted:
			types.RegisteredStarted++
		case hasRegistered:
			types.RegisteredOnly++
		}
	}

	classified := float64(types.total())
	analysis.DropoffPoints = []DropoffPoint{
		{
			Stage:      "after_registration",
			Count:      types.RegisteredOnly,
			Percentage: Rate(float64(types.RegisteredOnly), classified),
		},
		{
			Stage:      "after_started",
			Count:      types.RegisteredStarted,
			Percentage: Rate(float64(types.RegisteredStarted), classified),
		},
	}

	analysis.AverageTimes = StageLatencies{
		RegistrationToStart: round2(mean(regToStart)),
		StartToCompletion:   round2(mean(startToComplete)),
	}
	analysis.ConversionTimes = ConversionTimes{
		AverageTimeToStart:    round2(mean(pairRegToStart)),
		AverageTimeToComplete: round2(mean(pairStartToComplete)),
	}

	return analysis
}

func journeysByUser(entries []domain.FunnelEntry) map[string]map[domain.FunnelStage]time.Time {
	byUser := make(map[string]map[domain.FunnelStage]time.Time)
	for _, entry := range entries {
		stamps := byUser[entry.UserID]
		if stamps == nil {
			stamps = make(map[domain.FunnelStage]time.Time)
			byUser[entry.UserID] = stamps
		}
		if existing, ok := stamps[entry.Stage]; !ok || entry.Timestamp.After(existing) {
			stamps[entry.Stage] = entry.Timestamp
		}
	}
	return byUser
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
