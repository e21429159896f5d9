package analytics

import (
	"cat-tracker/app/domain"
	"cat-tracker/app/models"
	"cat-tracker/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAnalyticsRoutes(app *fiber.App, t *domain.Tracker) {
	api := app.Group("/api/analytics")
	api.Use(auth.Middleware(t))
	api.Use(auth.RequireRole(models.RoleStudent))
	api.Get("/summary", func(c *fiber.Ctx) error { return GetSummaryAPI(c, t) })
	api.Get("/trends", func(c *fiber.Ctx) error { return GetTrendsAPI(c, t) })
	api.Get("/sections", func(c *fiber.Ctx) error { return GetSectionsAPI(c, t) })
	api.Get("/insights", func(c *fiber.Ctx) error { return GetInsightsAPI(c, t) })

	adminAPI := app.Group("/api/admin/analytics")
	adminAPI.Use(auth.Middleware(t))
	adminAPI.Use(auth.RequireRole(models.RoleAdmin))
	adminAPI.Get("/top-performers", func(c *fiber.Ctx) error { return GetTopPerformersAPI(c, t) })
	adminAPI.Get("/class-averages", func(c *fiber.Ctx) error { return GetClassAveragesAPI(c, t) })
}
