package analytics

import (
	"sort"
	"time"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

// StageCounts holds the number of distinct users whose stage set contains
// each funnel stage. The counts are presence counts, not exclusive buckets:
// a user appearing in completed also appears in any other stage they reached,
// and nothing forces the counts to decrease down the funnel.
type StageCounts struct {
	Registered int `json:"registered"`
	Started    int `json:"started"`
	Completed  int `json:"completed"`
}

// FunnelConversionRates are the stage-to-stage conversion percentages.
type FunnelConversionRates struct {
	RegisteredToStarted float64 `json:"registered_to_started"`
	StartedToCompleted  float64 `json:"started_to_completed"`
	OverallCompletion   float64 `json:"overall_completion"`
}

// DropoffCounts are the users lost between consecutive stages.
type DropoffCounts struct {
	AfterRegistration int `json:"after_registration"`
	AfterStarted      int `json:"after_started"`
}

// DropoffRates are the dropoff counts as a percentage of the stage each drop
// falls out of.
type DropoffRates struct {
	AfterRegistration float64 `json:"after_registration"`
	AfterStarted      float64 `json:"after_started"`
}

// FunnelMetrics is the conversion funnel aggregate for one event.
type FunnelMetrics struct {
	StageCounts     StageCounts           `json:"stage_counts"`
	ConversionRates FunnelConversionRates `json:"conversion_rates"`
	DropoffCounts   DropoffCounts         `json:"dropoff_counts"`
	DropoffRates    DropoffRates          `json:"dropoff_rates"`
}

// ComputeFunnel collapses each user's funnel entries into a set of distinct
// stages reached and counts stage presence across users. It tolerates
// non-monotonic data (for example a completed entry without a started one)
// by design: it only counts presence per stage.
func ComputeFunnel(entries []domain.FunnelEntry) FunnelMetrics {
	var metrics FunnelMetrics
	counts := &metrics.StageCounts

	for _, stages := range stageSetsByUser(entries) {
		if stages[domain.StageRegistered] {
			counts.Registered++
		}
		if stages[domain.StageStarted] {
			counts.Started++
		}
		if stages[domain.StageCompleted] {
			counts.Completed++
		}
	}

	registered := float64(counts.Registered)
	started := float64(counts.Started)
	completed := float64(counts.Completed)

	metrics.ConversionRates = FunnelConversionRates{
		RegisteredToStarted: Rate(started, registered),
		StartedToCompleted:  Rate(completed, started),
		OverallCompletion:   Rate(completed, registered),
	}

	metrics.DropoffCounts = DropoffCounts{
		AfterRegistration: counts.Registered - counts.Started,
		AfterStarted:      counts.Started - counts.Completed,
	}

	metrics.DropoffRates = DropoffRates{
		AfterRegistration: Rate(float64(metrics.DropoffCounts.AfterRegistration), registered),
		AfterStarted:      Rate(float64(metrics.DropoffCounts.AfterStarted), started),
	}

	return metrics
}

// FunnelTrendPoint is the distinct-user count per stage for one calendar day.
type FunnelTrendPoint struct {
	Date       time.Time `json:"date"`
	Registered int       `json:"registered"`
	Started    int       `json:"started"`
	Completed  int       `json:"completed"`
}

// FunnelTrends buckets funnel entries by the UTC calendar day of their
// timestamp and counts distinct users per stage per day, sorted ascending.
func FunnelTrends(entries []domain.FunnelEntry) []FunnelTrendPoint {
	type stageUsers map[domain.FunnelStage]map[string]bool

	byDay := make(map[time.Time]stageUsers)
	for _, entry := range entries {
		day := dayStart(entry.Timestamp)
		stages := byDay[day]
		if stages == nil {
			stages = make(stageUsers)
			byDay[day] = stages
		}
		users := stages[entry.Stage]
		if users == nil {
			users = make(map[string]bool)
			stages[entry.Stage] = users
		}
		users[entry.UserID] = true
	}

	points := make([]FunnelTrendPoint, 0, len(byDay))
	for day, stages := range byDay {
		points = append(points, FunnelTrendPoint{
			Date:       day,
			Registered: len(stages[domain.StageRegistered]),
			Started:    len(stages[domain.StageStarted]),
			Completed:  len(stages[domain.StageCompleted]),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

func stageSetsByUser(entries []domain.FunnelEntry) map[string]map[domain.FunnelStage]bool {
	byUser := make(map[string]map[domain.FunnelStage]bool)
	for _, entry := range entries {
		stages := byUser[entry.UserID]
		if stages == nil {
			stages = make(map[domain.FunnelStage]bool)
			byUser[entry.UserID] = stages
		}
		stages[entry.Stage] = true
	}
	return byUser
}
