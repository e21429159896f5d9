package records

import (
	"errors"

	"cat-tracker/app/analytics"
	"cat-tracker/app/domain"
	"cat-tracker/app/models"
	"cat-tracker/app/routes/auth"
	"cat-tracker/app/store"

	"github.com/gofiber/fiber/v2"
)

// recordRow decorates a record with its performance badge for table display.
type recordRow struct {
	models.TestRecord
	Badge models.Badge `json:"badge"`
}

// GetRecordsAPI lists the logged-in student's records in insertion order,
// optionally filtered by a search query over name, date and score.
func GetRecordsAPI(c *fiber.Ctx, t *domain.Tracker) error {
	session := auth.SessionFromContext(c)

	var list []*models.TestRecord
	if query := c.Query("search"); query != "" {
		list = t.SearchRecords(session.Handle, query)
	} else {
		list = t.ListRecords(session.Handle)
	}

	rows := make([]recordRow, len(list))
	for i, rec := range list {
		rows[i] = recordRow{TestRecord: *rec, Badge: analytics.PerformanceBadge(rec.OverallPercentile)}
	}

	return c.JSON(fiber.Map{
		"records": rows,
		"count":   len(rows),
	})
}

// SubmitRecordAPI validates and appends a new mock-test result for the
// logged-in student.
func SubmitRecordAPI(c *fiber.Ctx, t *domain.Tracker) error {
	session := auth.SessionFromContext(c)

	var rec models.TestRecord
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	stored, err := t.AddTestRecord(session.Handle, rec)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(400).JSON(fiber.Map{
				"error":      "Validation failed",
				"validation": verr,
			})
		case errors.Is(err, domain.ErrAccountNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Account not found"})
		case errors.Is(err, domain.ErrNotStudent):
			return c.Status(403).JSON(fiber.Map{"error": "Only student accounts can submit test records"})
		case errors.Is(err, store.ErrUnavailable):
			// Record kept in memory; warn that it may be lost on restart.
			return c.Status(503).JSON(fiber.Map{
				"error":  "Record saved in memory only; data file is unavailable",
				"record": stored,
			})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save record"})
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Mock test added successfully",
		"record":  stored,
	})
}

// DeleteRecordAPI removes one of the student's own records by ID.
func DeleteRecordAPI(c *fiber.Ctx, t *domain.Tracker) error {
	session := auth.SessionFromContext(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	if err := t.DeleteTestRecord(session.Handle, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Test record not found"})
		case errors.Is(err, store.ErrUnavailable):
			return c.Status(503).JSON(fiber.Map{"error": "Record deleted in memory only; data file is unavailable"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete record"})
		}
	}

	return c.JSON(fiber.Map{"message": "Mock test deleted successfully"})
}

// GetAllRecordsAPI lists every student's records for the admin table, with
// optional student filter and search query.
func GetAllRecordsAPI(c *fiber.Ctx, t *domain.Tracker) error {
	query := c.Query("search")
	studentFilter := c.Query("student")

	rows := t.SearchAllRecords(query, studentFilter)

	type adminRow struct {
		models.AdminRecordRow
		Badge models.Badge `json:"badge"`
	}
	out := make([]adminRow, len(rows))
	for i, row := range rows {
		out[i] = adminRow{AdminRecordRow: row, Badge: analytics.PerformanceBadge(row.OverallPercentile)}
	}

	return c.JSON(fiber.Map{
		"records": out,
		"count":   len(out),
	})
}
