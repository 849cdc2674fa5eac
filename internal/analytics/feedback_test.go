package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

func feedbackWithOverall(ratings ...float64) []domain.FeedbackRecord {
	records := make([]domain.FeedbackRecord, 0, len(ratings))
	for i, overall := range ratings {
		records = append(records, domain.FeedbackRecord{
			EventID: "event-1",
			UserID:  string(rune('a' + i)),
			Rating:  domain.Rating{Overall: overall},
		})
	}
	return records
}

func TestSummarizeFeedback_EmptySet(t *testing.T) {
	summary := SummarizeFeedback(nil)

	assert.Equal(t, 0, summary.TotalFeedbacks)
	assert.Equal(t, RatingAverages{}, summary.AverageRating)
	assert.NotNil(t, summary.RatingDistribution)
	assert.Empty(t, summary.RatingDistribution)
	assert.Equal(t, 0.0, summary.NetPromoterScore)
	assert.Equal(t, Sentiment{}, summary.SentimentAnalysis)
}

func TestSummarizeFeedback_NetPromoterScore(t *testing.T) {
	// Overall ratings [5,5,4,2,1]: promoters >=4.5 are the two 5s,
	// detractors <=2.5 are the 2 and the 1, so NPS is (2-2)/5*100 = 0.
	summary := SummarizeFeedback(feedbackWithOverall(5, 5, 4, 2, 1))

	assert.Equal(t, 5, summary.TotalFeedbacks)
	assert.Equal(t, 0.0, summary.NetPromoterScore)
}

func TestSummarizeFeedback_NetPromoterScorePositive(t *testing.T) {
	summary := SummarizeFeedback(feedbackWithOverall(5, 4.5, 4, 3))

	// 2 promoters, 0 detractors over 4 records.
	assert.Equal(t, 50.0, summary.NetPromoterScore)
}

func TestSummarizeFeedback_Sentiment(t *testing.T) {
	summary := SummarizeFeedback(feedbackWithOverall(5, 4, 3, 2.5, 2, 1))

	assert.Equal(t, 2, summary.SentimentAnalysis.Positive)
	assert.Equal(t, 2, summary.SentimentAnalysis.Neutral)
	assert.Equal(t, 2, summary.SentimentAnalysis.Negative)
}

func TestSummarizeFeedback_RatingDistribution(t *testing.T) {
	summary := SummarizeFeedback(feedbackWithOverall(4.8, 4.2, 3.5, 3, 1.9))

	assert.Equal(t, map[int]int{4: 2, 3: 2, 1: 1}, summary.RatingDistribution)
}

func TestSummarizeFeedback_Averages(t *testing.T) {
	records := []domain.FeedbackRecord{
		{UserID: "a", Rating: domain.Rating{Overall: 5, Content: 4, Organization: 5}},
		{UserID: "b", Rating: domain.Rating{Overall: 4, Content: 3}},
		{UserID: "c", Rating: domain.Rating{Overall: 3}},
	}

	summary := SummarizeFeedback(records)

	assert.Equal(t, 4.0, summary.AverageRating.Overall)
	// Optional dimensions divide by the total record count even when a
	// record omitted the dimension.
	assert.InDelta(t, 2.33, summary.AverageRating.Content, 0.001)
	assert.InDelta(t, 1.67, summary.AverageRating.Organization, 0.001)
	assert.Equal(t, 0.0, summary.AverageRating.Venue)
	assert.Equal(t, 0.0, summary.AverageRating.Networking)
}

func TestAspectScores_SplitsDimensions(t *testing.T) {
	top, improve := AspectScores(RatingAverages{
		Content:      4.4,
		Organization: 3.7,
		Venue:        2.9,
		Networking:   0,
	})

	assert.Equal(t, []domain.AspectScore{{Aspect: "content", Score: 4.4}}, top)
	assert.Equal(t, []domain.AspectScore{{Aspect: "venue", Score: 2.9}}, improve)
}
