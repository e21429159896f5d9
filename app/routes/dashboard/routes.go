package dashboard

import (
	"cat-tracker/app/analytics"
	"cat-tracker/app/domain"
	"cat-tracker/app/models"
	"cat-tracker/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, t *domain.Tracker) {
	app.Get("/dashboard", auth.Middleware(t), func(c *fiber.Ctx) error {
		session := auth.SessionFromContext(c)
		return c.Render("dashboard", fiber.Map{
			"Title":   "Dashboard - CAT Mock Test Tracker",
			"Name":    session.Name,
			"Role":    session.Role,
			"IsAdmin": session.Role == models.RoleAdmin,
		})
	})

	api := app.Group("/api/dashboard")
	api.Use(auth.Middleware(t))
	api.Get("/student", auth.RequireRole(models.RoleStudent), func(c *fiber.Ctx) error {
		return GetStudentDashboardAPI(c, t)
	})
	api.Get("/admin", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return GetAdminDashboardAPI(c, t)
	})

	profile := app.Group("/api/profile")
	profile.Use(auth.Middleware(t))
	profile.Get("/", func(c *fiber.Ctx) error { return GetProfileAPI(c, t) })
}

// GetStudentDashboardAPI returns the stat cards plus the three most recent
// tests, newest first.
func GetStudentDashboardAPI(c *fiber.Ctx, t *domain.Tracker) error {
	session := auth.SessionFromContext(c)
	records := t.ListRecords(session.Handle)

	return c.JSON(fiber.Map{
		"summary":     analytics.StudentSummary(records),
		"recentTests": analytics.RecentTests(records, 3),
	})
}

// GetAdminDashboardAPI returns the pooled class statistics.
func GetAdminDashboardAPI(c *fiber.Ctx, t *domain.Tracker) error {
	summary := analytics.ClassSummary(t.AccountsSnapshot(), t.RecordsSnapshot())
	return c.JSON(summary)
}

// GetProfileAPI returns the logged-in account's profile details.
func GetProfileAPI(c *fiber.Ctx, t *domain.Tracker) error {
	session := auth.SessionFromContext(c)

	acc, ok := t.Account(session.Handle)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Account not found"})
	}

	return c.JSON(fiber.Map{
		"userId":      acc.Handle,
		"name":        acc.Name,
		"role":        acc.Role,
		"createdDate": acc.CreatedDate,
		"totalTests":  len(t.ListRecords(acc.Handle)),
	})
}
