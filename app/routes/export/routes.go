package export

import (
	"fmt"

	"cat-tracker/app/domain"
	exportfmt "cat-tracker/app/export"
	"cat-tracker/app/models"
	"cat-tracker/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupExportRoutes(app *fiber.App, t *domain.Tracker) {
	api := app.Group("/api/export")
	api.Use(auth.Middleware(t))
	api.Get("/records.csv", auth.RequireRole(models.RoleStudent), func(c *fiber.Ctx) error {
		return ExportStudentAPI(c, t)
	})
	api.Get("/all.csv", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return ExportAllAPI(c, t)
	})
}

// ExportStudentAPI downloads the logged-in student's records as CSV.
func ExportStudentAPI(c *fiber.Ctx, t *domain.Tracker) error {
	session := auth.SessionFromContext(c)

	records := t.ListRecords(session.Handle)
	if len(records) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No data to export"})
	}

	content := exportfmt.FormatStudentExport(session.Name, records)
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-mock-tests.csv"`, session.Handle))
	return c.SendString(content)
}

// ExportAllAPI downloads every student's records, with owner columns, as CSV.
// An optional student filter narrows the export.
func ExportAllAPI(c *fiber.Ctx, t *domain.Tracker) error {
	rows := t.AllRecordRows(c.Query("student"))
	if len(rows) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No data to export"})
	}

	content := exportfmt.FormatAllStudentsExport(rows)
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="all-students-mock-tests.csv"`)
	return c.SendString(content)
}
