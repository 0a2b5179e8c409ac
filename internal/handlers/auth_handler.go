package handlers

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Isaiahshap/pulse/internal/middleware"
	"github.com/Isaiahshap/pulse/pkg/utils"
)

// AuthHandler signs in the single staff account configured through the
// environment.
type AuthHandler struct {
	staffEmail        string
	staffPasswordHash string
	jwtSecret         string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(staffEmail, staffPasswordHash, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		staffEmail:        strings.ToLower(strings.TrimSpace(staffEmail)),
		staffPasswordHash: staffPasswordHash,
		jwtSecret:         jwtSecret,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	parsedEmail, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
	}
	req.Email = strings.ToLower(parsedEmail.Address)

	if req.Email != h.staffEmail || !utils.CheckPassword(req.Password, h.staffPasswordHash) {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "Invalid email or password"})
	}

	token, err := utils.GenerateToken(req.Email, middleware.RoleStaff, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"email": req.Email,
			"role":  middleware.RoleStaff,
		},
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	role, ok := c.Locals("role").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	return c.JSON(fiber.Map{"user": fiber.Map{"email": userID, "role": role}})
}
