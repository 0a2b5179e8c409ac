package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Isaiahshap/pulse/internal/models"
	"github.com/Isaiahshap/pulse/pkg/utils"
)

// PlanView pairs a plan with its price for the selected period.
type PlanView struct {
	Plan  models.MembershipPlan
	Quote models.PlanQuote
}

type MembershipData struct {
	Period models.BillingPeriod
	Plans  []PlanView
	FAQ    []models.FAQEntry
}

func Membership(cfg PageConfig, data MembershipData) g.Node {
	return Layout(cfg,
		h.Section(
			h.Class("page-header"),
			h.H1(g.Text("Choose "), h.Span(g.Text("Your Path"))),
		),
		h.Div(
			h.Class("period-toggle"),
			g.Attr("role", "group"),
			h.Aria("label", "Billing period"),
			periodLink(models.BillingMonthly, "Monthly", data.Period),
			periodLink(models.BillingYearly, "Yearly", data.Period),
			h.Span(h.Class("badge"), g.Text("Save 20%")),
		),
		h.Section(
			h.Class("plans"),
			g.Map(data.Plans, planCard),
		),
		h.Section(
			h.Class("transform"),
			h.H2(g.Text("Transform "), h.Span(g.Text("Your Life"))),
			h.P(g.Text("State-of-the-art facilities, expert guidance, and a motivating atmosphere. Join a community dedicated to pushing boundaries and achieving greatness.")),
		),
		h.Section(
			h.Class("faq"),
			h.H2(g.Text("FAQ")),
			g.Map(data.FAQ, func(entry models.FAQEntry) g.Node {
				return h.Details(
					h.Summary(g.Text(entry.Question)),
					h.P(g.Text(entry.Answer)),
				)
			}),
		),
		h.Section(
			h.Class("cta-band"),
			h.H2(g.Text("Start Now")),
			h.A(h.Href("/contact"), g.Text("Contact Us")),
		),
	)
}

func periodLink(period models.BillingPeriod, label string, selected models.BillingPeriod) g.Node {
	return h.A(
		h.Href(withQuery("/membership", "period", string(period))),
		h.Aria("pressed", boolAttr(period == selected)),
		g.Text(label),
	)
}

func planCard(view PlanView) g.Node {
	quote := view.Quote
	return h.Article(
		h.Class("plan-card"),
		g.Attr("data-plan", view.Plan.Name),
		g.If(view.Plan.Highlight, h.Span(h.Class("badge"), g.Text("Most Popular"))),
		h.H3(g.Text(view.Plan.Name)),
		h.P(h.Class("price"), h.Strong(g.Text(quote.Display)), h.Span(g.Text(quote.Unit))),
		g.If(quote.Period == models.BillingYearly && quote.Savings > 0,
			h.P(h.Class("savings"), g.Textf("Save $%s per year", utils.FormatThousands(quote.Savings))),
		),
		h.P(g.Text(view.Plan.Description)),
		h.Ul(
			h.Class("features"),
			g.Map(view.Plan.Features, func(feature models.PlanFeature) g.Node {
				class := "excluded"
				if feature.Included {
					class = "included"
				}
				return h.Li(h.Class(class), g.Text(feature.Feature))
			}),
		),
		h.A(h.Class("cta"), h.Href("/contact"), g.Text("Get Started")),
	)
}
