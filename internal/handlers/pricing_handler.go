package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Isaiahshap/pulse/internal/models"
	"github.com/Isaiahshap/pulse/internal/services"
)

type pricingService interface {
	Quotes(period models.BillingPeriod) ([]models.PlanQuote, error)
	QuoteByName(name string, period models.BillingPeriod) (*models.PlanQuote, error)
}

type PricingHandler struct {
	service pricingService
	plans   planLister
}

type planLister interface {
	Plans() []models.MembershipPlan
}

func NewPricingHandler(service pricingService, plans planLister) *PricingHandler {
	return &PricingHandler{service: service, plans: plans}
}

// ListPlans returns the authored plans alongside their quotes for ?period=.
func (h *PricingHandler) ListPlans(c *fiber.Ctx) error {
	period, err := services.ParseBillingPeriod(c.Query("period"))
	if err != nil {
		return mapCatalogError(c, err)
	}

	quotes, err := h.service.Quotes(period)
	if err != nil {
		return mapCatalogError(c, err)
	}

	return c.JSON(fiber.Map{
		"period": period,
		"plans":  h.plans.Plans(),
		"quotes": quotes,
	})
}

func (h *PricingHandler) QuotePlan(c *fiber.Ctx) error {
	period, err := services.ParseBillingPeriod(c.Query("period"))
	if err != nil {
		return mapCatalogError(c, err)
	}

	quote, err := h.service.QuoteByName(c.Params("name"), period)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(fiber.Map{"quote": quote})
}

// maxEstimateMonthly keeps twelve discounted months well inside int range.
const maxEstimateMonthly = 1_000_000

// YearlyEstimate prices a hypothetical plan that only has a monthly figure.
func (h *PricingHandler) YearlyEstimate(c *fiber.Ctx) error {
	monthly, err := services.ParsePrice(c.Query("monthly"))
	if err != nil {
		return mapCatalogError(c, err)
	}
	if monthly < 0 || monthly > maxEstimateMonthly {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Price out of range"})
	}

	yearly := services.HypotheticalYearlyPrice(monthly)
	return c.JSON(fiber.Map{
		"monthly": monthly,
		"yearly":  yearly,
		"display": "$" + services.FormatPrice(yearly),
	})
}
