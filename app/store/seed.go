package store

import "cat-tracker/app/models"

// SeedSnapshot builds the first-run demo data: one admin, three students and
// a handful of sample mock-test results. It is used whenever no usable data
// file exists.
func SeedSnapshot() *Snapshot {
	return &Snapshot{
		Accounts: map[string]*models.Account{
			"admin": {
				Handle:      "admin",
				Secret:      "admin123",
				Role:        models.RoleAdmin,
				Name:        "System Administrator",
				CreatedDate: "2025-08-29",
			},
			"student1": {
				Handle:      "student1",
				Secret:      "pass123",
				Role:        models.RoleStudent,
				Name:        "Rahul Sharma",
				CreatedDate: "2025-08-29",
			},
			"student2": {
				Handle:      "student2",
				Secret:      "pass456",
				Role:        models.RoleStudent,
				Name:        "Priya Patel",
				CreatedDate: "2025-08-29",
			},
			"student3": {
				Handle:      "student3",
				Secret:      "pass789",
				Role:        models.RoleStudent,
				Name:        "Amit Kumar",
				CreatedDate: "2025-08-29",
			},
		},
		Records: map[string][]*models.TestRecord{
			"student1": {
				{
					ID:                1,
					MockName:          "TIME Mock Test 1",
					TotalScore:        89,
					OverallPercentile: 96.5,
					NegativeMarks:     8,
					Accuracy:          78.2,
					VARCMarks:         32,
					VARCPercentile:    94.2,
					LRDIMarks:         28,
					LRDIPercentile:    97.8,
					QAMarks:           29,
					QAPercentile:      95.1,
					TestDate:          "2025-08-15",
				},
				{
					ID:                2,
					MockName:          "IMS Mock Test 2",
					TotalScore:        76,
					OverallPercentile: 92.3,
					NegativeMarks:     12,
					Accuracy:          71.5,
					VARCMarks:         28,
					VARCPercentile:    91.2,
					LRDIMarks:         22,
					LRDIPercentile:    89.4,
					QAMarks:           26,
					QAPercentile:      94.7,
					TestDate:          "2025-08-20",
				},
			},
			"student2": {
				{
					ID:                1,
					MockName:          "Career Launcher Mock 1",
					TotalScore:        68,
					OverallPercentile: 87.2,
					NegativeMarks:     15,
					Accuracy:          65.4,
					VARCMarks:         24,
					VARCPercentile:    85.6,
					LRDIMarks:         20,
					LRDIPercentile:    82.1,
					QAMarks:           24,
					QAPercentile:      89.8,
					TestDate:          "2025-08-18",
				},
			},
			"student3": {
				{
					ID:                1,
					MockName:          "Unacademy Mock 1",
					TotalScore:        54,
					OverallPercentile: 78.9,
					NegativeMarks:     18,
					Accuracy:          58.7,
					VARCMarks:         18,
					VARCPercentile:    76.4,
					LRDIMarks:         16,
					LRDIPercentile:    74.2,
					QAMarks:           20,
					QAPercentile:      82.1,
					TestDate:          "2025-08-22",
				},
			},
		},
	}
}
