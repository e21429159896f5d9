package analytics

import (
	"math"
	"sort"
	"time"

	"cat-tracker/app/models"
)

// The three scored sections in their fixed display order.
var sectionNames = [3]string{"VARC", "LRDI", "QA"}

func sectionMarks(rec *models.TestRecord) [3]float64 {
	return [3]float64{rec.VARCMarks, rec.LRDIMarks, rec.QAMarks}
}

func sectionPercentiles(rec *models.TestRecord) [3]float64 {
	return [3]float64{rec.VARCPercentile, rec.LRDIPercentile, rec.QAPercentile}
}

// SectionBreakdown computes mean marks and mean percentile per section for
// the sections chart. Means are rounded to one decimal.
func SectionBreakdown(records []*models.TestRecord) []models.SectionAverage {
	out := make([]models.SectionAverage, 3)
	for i, name := range sectionNames {
		out[i] = models.SectionAverage{Name: name}
	}
	if len(records) == 0 {
		return out
	}

	var markSums, percentileSums [3]float64
	for _, rec := range records {
		marks := sectionMarks(rec)
		percentiles := sectionPercentiles(rec)
		for i := range sectionNames {
			markSums[i] += marks[i]
			percentileSums[i] += percentiles[i]
		}
	}

	n := float64(len(records))
	for i := range out {
		out[i].AvgMarks = round1(markSums[i] / n)
		out[i].AvgPercentile = round1(percentileSums[i] / n)
	}
	return out
}

// TrendSeries projects records to (date, percentile, score) points sorted
// ascending by test date. The sort is stable: records sharing a date keep
// their insertion order.
func TrendSeries(records []*models.TestRecord) []models.TrendPoint {
	sorted := make([]*models.TestRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseDate(sorted[i].TestDate).Before(parseDate(sorted[j].TestDate))
	})

	out := make([]models.TrendPoint, len(sorted))
	for i, rec := range sorted {
		out[i] = models.TrendPoint{
			Date:       rec.TestDate,
			Percentile: rec.OverallPercentile,
			Score:      rec.TotalScore,
		}
	}
	return out
}

func parseDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return d
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
