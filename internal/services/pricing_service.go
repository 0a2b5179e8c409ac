package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/Isaiahshap/pulse/internal/models"
	"github.com/Isaiahshap/pulse/pkg/utils"
)

const yearlyDiscount = 0.8

type planCatalog interface {
	Plans() []models.MembershipPlan
	PlanByName(name string) (models.MembershipPlan, bool)
}

type PricingService struct {
	plans planCatalog
}

func NewPricingService(plans planCatalog) *PricingService {
	return &PricingService{plans: plans}
}

// Quotes prices every plan for period, in catalog order.
func (s *PricingService) Quotes(period models.BillingPeriod) ([]models.PlanQuote, error) {
	plans := s.plans.Plans()
	quotes := make([]models.PlanQuote, 0, len(plans))
	for _, plan := range plans {
		quote, err := Quote(plan, period)
		if err != nil {
			return nil, fmt.Errorf("quote %s: %w", plan.Name, err)
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

func (s *PricingService) QuoteByName(name string, period models.BillingPeriod) (*models.PlanQuote, error) {
	plan, ok := s.plans.PlanByName(name)
	if !ok {
		return nil, ErrPlanNotFound
	}
	quote, err := Quote(plan, period)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// ParseBillingPeriod maps "" to monthly, which is the toggle's initial state.
func ParseBillingPeriod(raw string) (models.BillingPeriod, error) {
	switch models.BillingPeriod(strings.ToLower(strings.TrimSpace(raw))) {
	case "", models.BillingMonthly:
		return models.BillingMonthly, nil
	case models.BillingYearly:
		return models.BillingYearly, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// ParsePrice reads the leading integer of raw the way the site's price strings
// were always read: surrounding noise after the digits is ignored ("49.99" is
// 49) but a string without leading digits is rejected.
func ParsePrice(raw string) (int, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPrice, raw)
	}

	value, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPrice, raw)
	}
	return sign * value, nil
}

// YearlySavings is what a yearly subscriber saves over twelve monthly payments.
func YearlySavings(plan models.MembershipPlan) (int, error) {
	monthly, err := ParsePrice(plan.Price.Monthly)
	if err != nil {
		return 0, err
	}
	yearly, err := ParsePrice(plan.Price.Yearly)
	if err != nil {
		return 0, err
	}
	return monthly*12 - yearly, nil
}

// HypotheticalYearlyPrice is the 20%-off annual price for a plan that only
// has a monthly figure.
func HypotheticalYearlyPrice(monthly int) int {
	return int(math.Floor(float64(monthly) * 12 * yearlyDiscount))
}

func FormatPrice(price int) string {
	return utils.FormatThousands(price)
}

func Quote(plan models.MembershipPlan, period models.BillingPeriod) (models.PlanQuote, error) {
	monthly, err := ParsePrice(plan.Price.Monthly)
	if err != nil {
		return models.PlanQuote{}, err
	}

	quote := models.PlanQuote{
		Plan:               plan.Name,
		Period:             period,
		HypotheticalYearly: HypotheticalYearlyPrice(monthly),
		Highlight:          plan.Highlight,
	}

	switch period {
	case models.BillingMonthly:
		quote.Price = monthly
		quote.Unit = "/month"
	case models.BillingYearly:
		yearly, err := ParsePrice(plan.Price.Yearly)
		if err != nil {
			return models.PlanQuote{}, err
		}
		quote.Price = yearly
		quote.Unit = "/year"
		quote.Savings = monthly*12 - yearly
	default:
		return models.PlanQuote{}, ErrInvalidPeriod
	}

	quote.Display = "$" + FormatPrice(quote.Price)
	return quote, nil
}
