package users

import (
	"errors"

	"cat-tracker/app/domain"
	"cat-tracker/app/models"
	"cat-tracker/app/store"

	"github.com/gofiber/fiber/v2"
)

// GetUsersAPI lists student accounts with their test counts for the user
// management table.
func GetUsersAPI(c *fiber.Ctx, t *domain.Tracker) error {
	students := t.Students()
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// CreateUserAPI registers a new student account. Only students are created
// here; the admin account comes from the seed data.
func CreateUserAPI(c *fiber.Ctx, t *domain.Tracker) error {
	type CreateUserRequest struct {
		UserID   string `json:"userId"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	acc, err := t.CreateAccount(req.UserID, req.Password, req.Name, models.RoleStudent)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrDuplicateHandle):
			return c.Status(409).JSON(fiber.Map{"error": "User ID already exists"})
		case errors.As(err, &verr):
			return c.Status(400).JSON(fiber.Map{
				"error":      "Validation failed",
				"validation": verr,
			})
		case errors.Is(err, store.ErrUnavailable):
			return c.Status(503).JSON(fiber.Map{"error": "Student saved in memory only; data file is unavailable"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student added successfully",
		"student": fiber.Map{
			"userId":      acc.Handle,
			"name":        acc.Name,
			"createdDate": acc.CreatedDate,
		},
	})
}

// RenameUserAPI updates an account's display name.
func RenameUserAPI(c *fiber.Ctx, t *domain.Tracker) error {
	type RenameRequest struct {
		Name string `json:"name"`
	}

	var req RenameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := t.RenameAccount(c.Params("handle"), req.Name); err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, store.ErrUnavailable):
			return c.Status(503).JSON(fiber.Map{"error": "Rename saved in memory only; data file is unavailable"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
		}
	}

	return c.JSON(fiber.Map{"message": "User updated successfully"})
}

// DeleteUserAPI removes an account and all of its test records.
func DeleteUserAPI(c *fiber.Ctx, t *domain.Tracker) error {
	if err := t.DeleteAccount(c.Params("handle")); err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, store.ErrUnavailable):
			return c.Status(503).JSON(fiber.Map{"error": "Deletion saved in memory only; data file is unavailable"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
		}
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
