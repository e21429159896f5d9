package main

import (
	"log"

	"cat-tracker/app/config"
	"cat-tracker/app/domain"
	"cat-tracker/app/routes/analytics"
	"cat-tracker/app/routes/auth"
	"cat-tracker/app/routes/dashboard"
	"cat-tracker/app/routes/export"
	"cat-tracker/app/routes/records"
	"cat-tracker/app/routes/users"
	"cat-tracker/app/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler renders JSON for /api requests and error pages for web
// requests.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Page Not Found - CAT Mock Test Tracker",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - CAT Mock Test Tracker",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	cfg := config.Load()

	// Load tracker state; a load failure falls back to seed data instead of
	// refusing to start.
	tracker, err := domain.NewTracker(store.New(cfg.DataFile))
	if err != nil {
		log.Printf("Warning: data file problem, running with fallback state: %v", err)
	}
	if session := tracker.CurrentSession(); session != nil {
		log.Printf("Restored session for %s (%s)", session.Handle, session.Role)
	}

	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app, tracker)
	dashboard.SetupDashboardRoutes(app, tracker)
	records.SetupRecordsRoutes(app, tracker)
	analytics.SetupAnalyticsRoutes(app, tracker)
	users.SetupUsersRoutes(app, tracker)
	export.SetupExportRoutes(app, tracker)

	// Catch-all 404 (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Println("Server starting on", cfg.ListenAddr)
	log.Fatal(app.Listen(cfg.ListenAddr))
}
