package models

// TestRecord is one submitted mock-test result. IDs are unique within the
// owning account's list only; the global counter keeps them monotonically
// increasing across all accounts. Records are append-only, never edited.
//
// Score caps follow the CAT pattern: 204 total, 72 per section.
type TestRecord struct {
	ID                int     `json:"id"`
	MockName          string  `json:"mockName" validate:"required"`
	TotalScore        float64 `json:"totalScore" validate:"min=0,max=204"`
	OverallPercentile float64 `json:"overallPercentile" validate:"min=0,max=100"`
	NegativeMarks     float64 `json:"negativeMarks" validate:"min=0"`
	Accuracy          float64 `json:"accuracy" validate:"min=0,max=100"`
	VARCMarks         float64 `json:"varcMarks" validate:"min=0,max=72"`
	VARCPercentile    float64 `json:"varcPercentile" validate:"min=0,max=100"`
	LRDIMarks         float64 `json:"lrdiMarks" validate:"min=0,max=72"`
	LRDIPercentile    float64 `json:"lrdiPercentile" validate:"min=0,max=100"`
	QAMarks           float64 `json:"qaMarks" validate:"min=0,max=72"`
	QAPercentile      float64 `json:"qaPercentile" validate:"min=0,max=100"`
	TestDate          string  `json:"testDate" validate:"required,datetime=2006-01-02"`
}

// AdminRecordRow is a test record joined with its owner, used by the
// all-students table and the admin export.
type AdminRecordRow struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	TestRecord
}
