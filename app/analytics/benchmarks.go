package analytics

import "cat-tracker/app/models"

// Percentile thresholds for the performance badge, checked greater-or-equal
// in descending order.
const (
	ExcellentPercentile = 99.0
	GoodPercentile      = 95.0
	AveragePercentile   = 85.0
)

// PerformanceBadge classifies a percentile into exactly one display tier.
func PerformanceBadge(percentile float64) models.Badge {
	switch {
	case percentile >= ExcellentPercentile:
		return models.Badge{Class: "excellent", Label: "Excellent"}
	case percentile >= GoodPercentile:
		return models.Badge{Class: "good", Label: "Good"}
	case percentile >= AveragePercentile:
		return models.Badge{Class: "average", Label: "Average"}
	default:
		return models.Badge{Class: "needs-improvement", Label: "Needs Work"}
	}
}
