package records

import (
	"cat-tracker/app/domain"
	"cat-tracker/app/models"
	"cat-tracker/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupRecordsRoutes(app *fiber.App, t *domain.Tracker) {
	api := app.Group("/api/records")
	api.Use(auth.Middleware(t))
	api.Use(auth.RequireRole(models.RoleStudent))
	api.Get("/", func(c *fiber.Ctx) error { return GetRecordsAPI(c, t) })
	api.Post("/", func(c *fiber.Ctx) error { return SubmitRecordAPI(c, t) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteRecordAPI(c, t) })

	adminAPI := app.Group("/api/admin/records")
	adminAPI.Use(auth.Middleware(t))
	adminAPI.Use(auth.RequireRole(models.RoleAdmin))
	adminAPI.Get("/", func(c *fiber.Ctx) error { return GetAllRecordsAPI(c, t) })
}
