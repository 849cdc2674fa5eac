package analytics

import (
	"fmt"

	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
)

// ApplyEngagement folds one engagement fact into a day's metric counters and
// recomputes the conversion rate from the updated totals. Attendance, rating,
// share and bookmark facts are valid but carry no counter deltas. An
// unrecognized type is a validation error and leaves the metric untouched.
func ApplyEngagement(m *domain.DailyMetric, typ domain.EngagementType, meta domain.EngagementMetadata) error {
	switch typ {
	case domain.EngagementView:
		m.Views++
		m.PageViews++
		if meta.IsUniqueVisitor {
			m.UniqueVisitors++
		}
	case domain.EngagementRegistration:
		m.Registrations++
		if meta.Revenue != 0 {
			m.Revenue += meta.Revenue
		}
	case domain.EngagementCancellation:
		m.Cancellations++
		if meta.Refund != 0 {
			m.Revenue -= meta.Refund
		}
	case domain.EngagementAttendance, domain.EngagementRating,
		domain.EngagementShare, domain.EngagementBookmark:
		// Stored as raw facts only; no daily counter changes.
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownEngagementType, typ)
	}

	m.ConversionRate = Rate(float64(m.Registrations), float64(m.Views))
	return nil
}
