package users

import (
	"cat-tracker/app/domain"
	"cat-tracker/app/models"
	"cat-tracker/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupUsersRoutes(app *fiber.App, t *domain.Tracker) {
	api := app.Group("/api/users")
	api.Use(auth.Middleware(t))
	api.Use(auth.RequireRole(models.RoleAdmin))
	api.Get("/", func(c *fiber.Ctx) error { return GetUsersAPI(c, t) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateUserAPI(c, t) })
	api.Put("/:handle", func(c *fiber.Ctx) error { return RenameUserAPI(c, t) })
	api.Delete("/:handle", func(c *fiber.Ctx) error { return DeleteUserAPI(c, t) })
}
