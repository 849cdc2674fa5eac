// Package analytics implements the event analytics engine: daily metric
// accumulation, feedback summarization, trend generation, and conversion
// funnel / dropoff analysis. Everything here is pure computation over domain
// values; storage access lives in the service layer.
package analytics

import "math"

// Rate returns numerator/denominator as a percentage rounded to two decimal
// places, and 0 when the denominator is zero. Every rate in the engine
// (conversion, attendance, NPS, funnel conversion, dropoff) goes through this
// helper so the zero-denominator contract is applied uniformly.
func Rate(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return round2(numerator / denominator * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
