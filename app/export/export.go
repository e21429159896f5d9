package export

import (
	"strconv"
	"strings"
	"time"

	"cat-tracker/app/models"
)

// now is stubbed in tests to pin the generation timestamp.
var now = time.Now

var studentColumns = []string{
	"Mock Test Name", "Test Date", "Total Score", "Overall Percentile",
	"Negative Marks", "Accuracy %", "VARC Marks", "VARC Percentile",
	"LRDI Marks", "LRDI Percentile", "QA Marks", "QA Percentile",
}

// FormatStudentExport renders a student's records as delimited text: a title
// line, a generation-timestamp line, a blank line, the column headers and
// one row per record. Free-text fields are double-quote wrapped; embedded
// quotes and commas are not escaped, which is a documented limitation.
func FormatStudentExport(displayName string, records []*models.TestRecord) string {
	lines := []string{
		"CAT Mock Test Performance Data - " + displayName,
		"Generated on: " + now().Format("1/2/2006"),
		"",
		strings.Join(studentColumns, ","),
	}
	for _, rec := range records {
		lines = append(lines, strings.Join(recordFields(rec), ","))
	}
	return strings.Join(lines, "\n")
}

// FormatAllStudentsExport is the admin variant with two leading columns:
// quoted student name and bare student handle.
func FormatAllStudentsExport(rows []models.AdminRecordRow) string {
	columns := append([]string{"Student Name", "Student ID"}, studentColumns...)
	lines := []string{
		"CAT Mock Test Performance Data - All Students",
		"Generated on: " + now().Format("1/2/2006"),
		"",
		strings.Join(columns, ","),
	}
	for _, row := range rows {
		fields := append([]string{quote(row.StudentName), row.StudentID}, recordFields(&row.TestRecord)...)
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

func recordFields(rec *models.TestRecord) []string {
	return []string{
		quote(rec.MockName),
		rec.TestDate,
		num(rec.TotalScore),
		num(rec.OverallPercentile),
		num(rec.NegativeMarks),
		num(rec.Accuracy),
		num(rec.VARCMarks),
		num(rec.VARCPercentile),
		num(rec.LRDIMarks),
		num(rec.LRDIPercentile),
		num(rec.QAMarks),
		num(rec.QAPercentile),
	}
}

func quote(s string) string {
	return `"` + s + `"`
}

// num renders without trailing zeros so round-tripping loses no precision.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
