package models

// StudentSummary backs the four stat cards on the student dashboard and the
// analytics panel. Display fields carry the formatted values the views show,
// with "--" standing in when there is no data yet.
type StudentSummary struct {
	TotalTests     int    `json:"totalTests"`
	AvgScore       string `json:"avgScore"`
	BestPercentile string `json:"bestPercentile"`
	Improvement    string `json:"improvement"`
	AvgAccuracy    string `json:"avgAccuracy"`
}

// ClassSummary backs the admin dashboard stat cards.
type ClassSummary struct {
	TotalStudents int    `json:"totalStudents"`
	TotalTests    int    `json:"totalTests"`
	AvgClassScore string `json:"avgClassScore"`
	TopPerformer  string `json:"topPerformer"`
}

// PerformerRank is one row of the top-performers leaderboard: a student's
// personal-best percentile and the score achieved on that same record.
type PerformerRank struct {
	Name           string  `json:"name"`
	BestPercentile float64 `json:"bestPercentile"`
	BestScore      float64 `json:"bestScore"`
}

// StudentAverage feeds the admin class chart.
type StudentAverage struct {
	Name     string  `json:"name"`
	AvgScore float64 `json:"avgScore"`
}

// SectionAverage holds the per-section means for the sections chart.
type SectionAverage struct {
	Name          string  `json:"name"`
	AvgMarks      float64 `json:"avgMarks"`
	AvgPercentile float64 `json:"avgPercentile"`
}

// TrendPoint is one point of the date-ordered trend chart. This is the only
// view where date order, not insertion order, is authoritative.
type TrendPoint struct {
	Date       string  `json:"date"`
	Percentile float64 `json:"percentile"`
	Score      float64 `json:"score"`
}

// Insight is one piece of generated commentary on a student's performance.
type Insight struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Badge classifies a percentile into a display tier.
type Badge struct {
	Class string `json:"class"`
	Label string `json:"label"`
}
