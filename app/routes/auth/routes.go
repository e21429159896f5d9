package auth

import (
	"strings"

	"cat-tracker/app/domain"
	"cat-tracker/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, t *domain.Tracker) {
	auth := app.Group("/auth")

	auth.Get("/login", func(c *fiber.Ctx) error { return ShowLoginPage(c, t) })
	auth.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, t) })
	auth.Post("/logout", func(c *fiber.Ctx) error { return LogoutAPI(c, t) })
}

func ShowLoginPage(c *fiber.Ctx, t *domain.Tracker) error {
	// Already logged in with a live account: straight to the dashboard.
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if claims, err := ValidateJWT(tokenString); err == nil {
			if _, ok := t.Account(claims.Handle); ok {
				return c.Redirect("/dashboard")
			}
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - CAT Mock Test Tracker",
	}, "")
}

// Middleware validates the session cookie and re-checks that the referenced
// account still exists, discarding stale sessions for deleted accounts. The
// account is authoritative for name and role so renames take effect
// immediately.
func Middleware(t *domain.Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tokenString string

		tokenString = c.Cookies("jwt_token")
		if tokenString == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				tokenString = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

		if tokenString == "" {
			if isAPIRequest {
				return c.Status(401).JSON(fiber.Map{"error": "No token found"})
			}
			return c.Redirect("/auth/login")
		}

		claims, err := ValidateJWT(tokenString)
		if err != nil {
			if isAPIRequest {
				return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
			}
			return c.Redirect("/auth/login")
		}

		acc, ok := t.Account(claims.Handle)
		if !ok {
			if isAPIRequest {
				return c.Status(401).JSON(fiber.Map{"error": "Account no longer exists"})
			}
			return c.Redirect("/auth/login")
		}

		session := &models.Session{
			Handle: acc.Handle,
			Name:   acc.Name,
			Role:   acc.Role,
		}
		c.Locals("session", session)
		c.Locals("handle", session.Handle)
		c.Locals("role", session.Role)

		return c.Next()
	}
}

// RequireRole gates a route group to one role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("role") == role {
			return c.Next()
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - CAT Mock Test Tracker",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		})
	}
}

// SessionFromContext returns the session set by Middleware.
func SessionFromContext(c *fiber.Ctx) *models.Session {
	return c.Locals("session").(*models.Session)
}
