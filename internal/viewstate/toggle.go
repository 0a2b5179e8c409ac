package viewstate

import "github.com/Isaiahshap/pulse/internal/models"

// PricingToggle selects which price column the membership page shows.
type PricingToggle struct {
	period models.BillingPeriod
}

func NewPricingToggle() PricingToggle {
	return PricingToggle{period: models.BillingMonthly}
}

// Select ignores anything but the two known periods.
func (p *PricingToggle) Select(period models.BillingPeriod) {
	switch period {
	case models.BillingMonthly, models.BillingYearly:
		p.period = period
	}
}

func (p PricingToggle) Period() models.BillingPeriod {
	if p.period == "" {
		return models.BillingMonthly
	}
	return p.period
}

func (p PricingToggle) Yearly() bool {
	return p.Period() == models.BillingYearly
}
