package analytics

import (
	"fmt"

	"cat-tracker/app/models"
)

// Insight rule thresholds.
const (
	scoreTrendDelta    = 5.0
	weakSectionCutoff  = 80.0
	lowAccuracyCutoff  = 75.0
	highAccuracyCutoff = 85.0
)

// Insights generates the deterministic commentary for a student's records,
// evaluated in insertion order:
//
//  1. score trend of the latest vs previous record when there are at least
//     two (delta beyond +-5 points),
//  2. strongest section by mean percentile (always fires; ties go to the
//     first of VARC, LRDI, QA),
//  3. weakest section, only when its mean percentile is below 80,
//  4. mean accuracy outside the 75..85 band,
//  5. a generic fallback when nothing else fired.
//
// With the strongest-section rule always firing, the fallback is reachable
// only for an empty record set; it is kept anyway to match the original.
func Insights(records []*models.TestRecord) []models.Insight {
	if len(records) == 0 {
		return []models.Insight{{
			Icon: "info",
			Text: "Take more mock tests to see personalized insights",
		}}
	}

	var insights []models.Insight

	if len(records) >= 2 {
		latest := records[len(records)-1]
		previous := records[len(records)-2]
		delta := latest.TotalScore - previous.TotalScore
		if delta > scoreTrendDelta {
			insights = append(insights, models.Insight{
				Icon: "trend-up",
				Text: fmt.Sprintf("Great progress! Your score improved by %.1f points in your latest test.", delta),
			})
		} else if delta < -scoreTrendDelta {
			insights = append(insights, models.Insight{
				Icon: "trend-down",
				Text: fmt.Sprintf("Your score dropped by %.1f points. Focus on identifying weak areas.", -delta),
			})
		}
	}

	var sums [3]float64
	for _, rec := range records {
		percentiles := sectionPercentiles(rec)
		for i := range sums {
			sums[i] += percentiles[i]
		}
	}
	n := float64(len(records))

	strongest, weakest := 0, 0
	for i := 1; i < len(sums); i++ {
		if sums[i]/n > sums[strongest]/n {
			strongest = i
		}
		if sums[i]/n < sums[weakest]/n {
			weakest = i
		}
	}

	insights = append(insights, models.Insight{
		Icon: "strength",
		Text: fmt.Sprintf("%s is your strongest section with %.1f%% average percentile.",
			sectionNames[strongest], sums[strongest]/n),
	})

	if sums[weakest]/n < weakSectionCutoff {
		insights = append(insights, models.Insight{
			Icon: "weakness",
			Text: fmt.Sprintf("Focus more on the %s section. Your average percentile is %.1f%%.",
				sectionNames[weakest], sums[weakest]/n),
		})
	}

	var accuracySum float64
	for _, rec := range records {
		accuracySum += rec.Accuracy
	}
	avgAccuracy := accuracySum / n
	if avgAccuracy < lowAccuracyCutoff {
		insights = append(insights, models.Insight{
			Icon: "accuracy",
			Text: fmt.Sprintf("Your average accuracy is %.1f%%. Focus on solving fewer questions with higher accuracy.", avgAccuracy),
		})
	} else if avgAccuracy > highAccuracyCutoff {
		insights = append(insights, models.Insight{
			Icon: "accuracy",
			Text: fmt.Sprintf("Excellent accuracy of %.1f%%! You can try attempting more questions.", avgAccuracy),
		})
	}

	if len(insights) == 0 {
		insights = append(insights, models.Insight{
			Icon: "info",
			Text: "Keep taking more mock tests to get detailed performance insights.",
		})
	}
	return insights
}
