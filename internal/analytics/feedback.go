package analytics

import (
	"math"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

// NPS thresholds on the 1-5 overall rating scale, standing in for the usual
// 0-10 survey scale.
const (
	promoterThreshold  = 4.5
	detractorThreshold = 2.5
)

// RatingAverages holds the per-dimension rating averages of a feedback set.
type RatingAverages struct {
	Overall      float64 `json:"overall"`
	Content      float64 `json:"content"`
	Organization float64 `json:"organization"`
	Venue        float64 `json:"venue"`
	Networking   float64 `json:"networking"`
}

// Sentiment buckets feedback records by overall rating: >=4 positive,
// <=2 negative, the rest neutral.
type Sentiment struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// FeedbackSummary is the aggregate view over an event's feedback records.
type FeedbackSummary struct {
	AverageRating      RatingAverages `json:"average_rating"`
	TotalFeedbacks     int            `json:"total_feedbacks"`
	RatingDistribution map[int]int    `json:"rating_distribution"`
	SentimentAnalysis  Sentiment      `json:"sentiment_analysis"`
	NetPromoterScore   float64        `json:"net_promoter_score"`
}

// SummarizeFeedback reduces an event's feedback records into averages, a
// rating distribution, sentiment buckets and a Net Promoter-style score. An
// empty set yields zeroed averages and an empty distribution; no rate ever
// divides by zero.
//
// Optional dimension sums (content, organization, venue, networking) are
// divided by the total record count even when a record omitted the dimension,
// understating sparse dimensions. That matches the long-standing reporting
// behavior the admin console was built against, so it is kept as-is.
func SummarizeFeedback(records []domain.FeedbackRecord) FeedbackSummary {
	summary := FeedbackSummary{
		RatingDistribution: make(map[int]int),
	}

	if len(records) == 0 {
		return summary
	}

	count := len(records)
	summary.TotalFeedbacks = count

	var totals RatingAverages
	promoters, detractors := 0, 0

	for _, record := range records {
		overall := record.Rating.Overall

		totals.Overall += overall
		totals.Content += record.Rating.Content
		totals.Organization += record.Rating.Organization
		totals.Venue += record.Rating.Venue
		totals.Networking += record.Rating.Networking

		summary.RatingDistribution[int(math.Floor(overall))]++

		if overall >= promoterThreshold {
			promoters++
		}
		if overall <= detractorThreshold {
			detractors++
		}

		switch {
		case overall >= 4:
			summary.SentimentAnalysis.Positive++
		case overall <= 2:
			summary.SentimentAnalysis.Negative++
		default:
			summary.SentimentAnalysis.Neutral++
		}
	}

	n := float64(count)
	summary.AverageRating = RatingAverages{
		Overall:      round2(totals.Overall / n),
		Content:      round2(totals.Content / n),
		Organization: round2(totals.Organization / n),
		Venue:        round2(totals.Venue / n),
		Networking:   round2(totals.Networking / n),
	}

	summary.NetPromoterScore = Rate(float64(promoters-detractors), n)

	return summary
}

// Feedback dimensions scoring at or above aspectTopThreshold are reported as
// top performing aspects; below aspectWeakThreshold as areas for improvement.
const (
	aspectTopThreshold  = 4.0
	aspectWeakThreshold = 3.5
)

// AspectScores splits the optional rating dimensions into top performing
// aspects and areas for improvement for the performance summary. Dimensions
// nobody rated (average 0) are skipped.
func AspectScores(averages RatingAverages) (top, improve []domain.AspectScore) {
	dimensions := []domain.AspectScore{
		{Aspect: "content", Score: averages.Content},
		{Aspect: "organization", Score: averages.Organization},
		{Aspect: "venue", Score: averages.Venue},
		{Aspect: "networking", Score: averages.Networking},
	}

	for _, dim := range dimensions {
		switch {
		case dim.Score == 0:
		case dim.Score >= aspectTopThreshold:
			top = append(top, dim)
		case dim.Score < aspectWeakThreshold:
			improve = append(improve, dim)
		}
	}
	return top, improve
}
