package viewstate

import (
	"strconv"
	"strings"

	"github.com/Isaiahshap/pulse/internal/models"
)

// Query reads one URL query parameter; fiber.Ctx.Query fits.
type Query func(key string) string

// PageState is the local state a page starts from, rebuilt on every request.
// Close must be called when the page is done rendering.
type PageState struct {
	Menu      MobileMenu
	Pricing   PricingToggle
	Days      DaySelector
	Hero      HeroAlternator
	Scroll    *ScrollTracker
	ScrollY   *Signal[float64]
	ClassSlug string
	TrainerID int
	Category  string

	scope *Scope
}

// FromQuery understands menu=open, period=yearly, day=<Day>, hero=B, y=<px>,
// class=<slug>, trainer=<id> and category=<name>. Unknown values fall back to
// the defaults.
func FromQuery(query Query) *PageState {
	state := &PageState{
		Pricing: NewPricingToggle(),
		Days:    NewDaySelector(),
		Scroll:  &ScrollTracker{},
		ScrollY: &Signal[float64]{},
		scope:   &Scope{},
	}
	Listen(state.scope, state.ScrollY, state.Scroll.Sample)

	if y, err := strconv.ParseFloat(strings.TrimSpace(query("y")), 64); err == nil {
		state.ScrollY.Emit(y)
		state.Scroll.Frame()
	}

	if strings.EqualFold(query("menu"), "open") {
		state.Menu.Open()
	}
	state.Pricing.Select(models.BillingPeriod(strings.ToLower(strings.TrimSpace(query("period")))))
	state.Days.Select(strings.TrimSpace(query("day")))
	if strings.EqualFold(query("hero"), ClipB.String()) {
		state.Hero.Finished(ClipA)
	}

	state.ClassSlug = strings.TrimSpace(query("class"))
	if id, err := strconv.Atoi(strings.TrimSpace(query("trainer"))); err == nil && id > 0 {
		state.TrainerID = id
	}
	state.Category = strings.TrimSpace(query("category"))

	return state
}

// Close tears down the page's subscriptions.
func (p *PageState) Close() {
	p.scope.Close()
}
