package analytics

import (
	"fmt"
	"sort"

	"cat-tracker/app/models"
)

// NoData is the display sentinel for stats that need at least one record.
const NoData = "--"

// StudentSummary computes the dashboard stats for one student's records.
// "Latest" and "previous" are by insertion order, not test date.
func StudentSummary(records []*models.TestRecord) models.StudentSummary {
	summary := models.StudentSummary{
		TotalTests:     len(records),
		AvgScore:       NoData,
		BestPercentile: NoData,
		Improvement:    NoData,
		AvgAccuracy:    NoData,
	}
	if len(records) == 0 {
		return summary
	}

	var scoreSum, accuracySum, bestPercentile float64
	for _, rec := range records {
		scoreSum += rec.TotalScore
		accuracySum += rec.Accuracy
		if rec.OverallPercentile > bestPercentile {
			bestPercentile = rec.OverallPercentile
		}
	}
	n := float64(len(records))
	summary.AvgScore = fmt.Sprintf("%.1f", scoreSum/n)
	summary.BestPercentile = fmt.Sprintf("%.1f%%", bestPercentile)
	summary.AvgAccuracy = fmt.Sprintf("%.1f%%", accuracySum/n)

	if len(records) >= 2 {
		latest := records[len(records)-1]
		previous := records[len(records)-2]
		change := latest.OverallPercentile - previous.OverallPercentile
		sign := ""
		if change >= 0 {
			sign = "+"
		}
		summary.Improvement = fmt.Sprintf("%s%.1f%%", sign, change)
	}
	return summary
}

// ClassSummary pools every student's records: the mean is over all records,
// not an average of per-student averages. The top performer is the owner of
// the single highest-percentile record; on a tie the first record seen in
// sorted-handle order wins.
func ClassSummary(accounts map[string]*models.Account, records map[string][]*models.TestRecord) models.ClassSummary {
	summary := models.ClassSummary{
		AvgClassScore: NoData,
		TopPerformer:  NoData,
	}

	var scoreSum, bestPercentile float64
	totalTests := 0
	for _, handle := range sortedHandles(accounts) {
		acc := accounts[handle]
		if acc.Role == models.RoleStudent {
			summary.TotalStudents++
		}
		for _, rec := range records[handle] {
			totalTests++
			scoreSum += rec.TotalScore
			if rec.OverallPercentile > bestPercentile || summary.TopPerformer == NoData {
				bestPercentile = rec.OverallPercentile
				summary.TopPerformer = acc.Name
			}
		}
	}

	summary.TotalTests = totalTests
	if totalTests > 0 {
		summary.AvgClassScore = fmt.Sprintf("%.1f", scoreSum/float64(totalTests))
	}
	return summary
}

// TopPerformers ranks students by personal-best percentile, keeping the
// score achieved on that same record, and truncates to the top five.
func TopPerformers(accounts map[string]*models.Account, records map[string][]*models.TestRecord) []models.PerformerRank {
	var ranks []models.PerformerRank
	for _, handle := range sortedHandles(accounts) {
		acc := accounts[handle]
		list := records[handle]
		if acc.Role != models.RoleStudent || len(list) == 0 {
			continue
		}

		best := list[0]
		for _, rec := range list[1:] {
			if rec.OverallPercentile > best.OverallPercentile {
				best = rec
			}
		}
		ranks = append(ranks, models.PerformerRank{
			Name:           acc.Name,
			BestPercentile: best.OverallPercentile,
			BestScore:      best.TotalScore,
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].BestPercentile > ranks[j].BestPercentile
	})
	if len(ranks) > 5 {
		ranks = ranks[:5]
	}
	return ranks
}

// StudentAverages computes each student's mean total score for the class
// chart. Students with no records average to zero, matching the chart's
// empty bars.
func StudentAverages(accounts map[string]*models.Account, records map[string][]*models.TestRecord) []models.StudentAverage {
	var out []models.StudentAverage
	for _, handle := range sortedHandles(accounts) {
		acc := accounts[handle]
		if acc.Role != models.RoleStudent {
			continue
		}
		avg := 0.0
		if list := records[handle]; len(list) > 0 {
			var sum float64
			for _, rec := range list {
				sum += rec.TotalScore
			}
			avg = sum / float64(len(list))
		}
		out = append(out, models.StudentAverage{Name: acc.Name, AvgScore: avg})
	}
	return out
}

// RecentTests returns the last n records, newest first, for the dashboard
// widget. n is clamped to the valid range.
func RecentTests(records []*models.TestRecord, n int) []*models.TestRecord {
	if n < 0 {
		n = 0
	}
	if len(records) < n {
		n = len(records)
	}
	out := make([]*models.TestRecord, 0, n)
	for i := len(records) - 1; i >= len(records)-n; i-- {
		out = append(out, records[i])
	}
	return out
}

func sortedHandles(accounts map[string]*models.Account) []string {
	handles := make([]string, 0, len(accounts))
	for handle := range accounts {
		handles = append(handles, handle)
	}
	sort.Strings(handles)
	return handles
}
