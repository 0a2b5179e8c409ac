package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Isaiahshap/pulse/internal/models"
	"github.com/Isaiahshap/pulse/internal/services"
)

type contactService interface {
	Submit(ctx context.Context, input services.ContactInput) (*models.ContactMessage, error)
	Get(ctx context.Context, id string) (*models.ContactMessage, error)
	List(ctx context.Context, page, limit int) ([]models.ContactMessage, int, error)
}

type ContactHandler struct {
	service contactService
}

func NewContactHandler(service contactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var input services.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	message, err := h.service.Submit(c.UserContext(), input)
	if err != nil {
		return mapContactError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message})
}

func (h *ContactHandler) ListMessages(c *fiber.Ctx) error {
	page := parsePositiveInt(c.Query("page"), 1)
	if page > maxPage {
		page = maxPage
	}
	limit := parsePositiveInt(c.Query("limit"), defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	messages, total, err := h.service.List(c.UserContext(), page, limit)
	if err != nil {
		return mapContactError(c, err)
	}

	return c.JSON(fiber.Map{
		"messages":   messages,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *ContactHandler) GetMessage(c *fiber.Ctx) error {
	message, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapContactError(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}

func mapContactError(c *fiber.Ctx, err error) error {
	var validationErr *services.ContactValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Invalid contact submission",
			"fields": validationErr.Fields,
		})
	case errors.Is(err, services.ErrInvalidContact):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid contact submission"})
	case errors.Is(err, services.ErrMessageNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Message not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process contact request"})
	}
}
