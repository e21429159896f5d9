package auth

import (
	"errors"
	"log"
	"time"

	"cat-tracker/app/domain"
	"cat-tracker/app/store"

	"github.com/gofiber/fiber/v2"
)

func LoginAPI(c *fiber.Ctx, t *domain.Tracker) error {
	type LoginRequest struct {
		UserID   string `json:"userId"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.UserID == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Please enter both User ID and Password"})
	}

	session, err := t.Login(req.UserID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownHandle):
			return c.Status(401).JSON(fiber.Map{"error": "User ID not found"})
		case errors.Is(err, domain.ErrWrongSecret):
			return c.Status(401).JSON(fiber.Map{"error": "Invalid password"})
		case errors.Is(err, store.ErrUnavailable):
			// Login succeeded in memory; the session just could not be
			// persisted. Carry on but tell the caller.
			log.Printf("Warning: session not persisted: %v", err)
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Login failed"})
		}
	}

	token, tokenErr := GenerateJWT(session)
	if tokenErr != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	resp := fiber.Map{
		"message": "Login successful",
		"user":    session,
	}
	if err != nil {
		resp["warning"] = "Session could not be saved; it will not survive a restart"
	}
	return c.JSON(resp)
}

func LogoutAPI(c *fiber.Ctx, t *domain.Tracker) error {
	if err := t.Logout(); err != nil {
		log.Printf("Warning: session not cleared from data file: %v", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth/login")
}
