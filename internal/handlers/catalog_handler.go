package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Isaiahshap/pulse/internal/models"
	"github.com/Isaiahshap/pulse/internal/services"
)

type catalogReader interface {
	ClassesByCategory(category string) []models.ClassOffering
	ClassBySlug(slug string) (models.ClassOffering, bool)
	CategoryAudit() []models.CategoryAudit
	FeaturedCategories() []models.FeaturedCategory
	Trainers() []models.Trainer
	TrainerByID(id int) (models.Trainer, bool)
	FAQ() []models.FAQEntry
	GymInfo() models.GymInfo
	NavLinks() []models.NavLink
	MobileMenuLinks() []models.NavLink
	FooterLinks() []models.NavLink
}

type CatalogHandler struct {
	catalog catalogReader
}

func NewCatalogHandler(catalog catalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Site(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"gym": h.catalog.GymInfo(),
		"navigation": fiber.Map{
			"navbar":      h.catalog.NavLinks(),
			"mobile_menu": h.catalog.MobileMenuLinks(),
			"footer":      h.catalog.FooterLinks(),
		},
	})
}

func (h *CatalogHandler) FAQ(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"faq": h.catalog.FAQ()})
}

func (h *CatalogHandler) ListClasses(c *fiber.Ctx) error {
	category := c.Query("category")
	return c.JSON(fiber.Map{
		"category": category,
		"classes":  h.catalog.ClassesByCategory(category),
	})
}

func (h *CatalogHandler) GetClass(c *fiber.Ctx) error {
	class, ok := h.catalog.ClassBySlug(c.Params("slug"))
	if !ok {
		return mapCatalogError(c, services.ErrClassNotFound)
	}
	return c.JSON(fiber.Map{"class": class})
}

func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.catalog.CategoryAudit()})
}

func (h *CatalogHandler) FeaturedCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"featured": h.catalog.FeaturedCategories()})
}

func (h *CatalogHandler) ListTrainers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"trainers": h.catalog.Trainers()})
}

func (h *CatalogHandler) GetTrainer(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer id"})
	}

	trainer, ok := h.catalog.TrainerByID(id)
	if !ok {
		return mapCatalogError(c, services.ErrTrainerNotFound)
	}
	return c.JSON(fiber.Map{"trainer": trainer})
}

func mapCatalogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrClassNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	case errors.Is(err, services.ErrTrainerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
	case errors.Is(err, services.ErrPlanNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
	case errors.Is(err, services.ErrInvalidPeriod):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid billing period"})
	case errors.Is(err, services.ErrMalformedPrice):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid price"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load catalog"})
	}
}
