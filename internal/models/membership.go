package models

type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// PlanPrice holds authored decimal strings. The yearly figure is stored, not
// derived from the monthly one.
type PlanPrice struct {
	Monthly string `json:"monthly"`
	Yearly  string `json:"yearly"`
}

type PlanFeature struct {
	Feature  string `json:"feature"`
	Included bool   `json:"included"`
}

type MembershipPlan struct {
	Name        string        `json:"name"`
	Price       PlanPrice     `json:"price"`
	Description string        `json:"description"`
	Features    []PlanFeature `json:"features"`
	Highlight   bool          `json:"highlight,omitempty"`
}

type PlanQuote struct {
	Plan               string        `json:"plan"`
	Period             BillingPeriod `json:"period"`
	Price              int           `json:"price"`
	Display            string        `json:"display"`
	Unit               string        `json:"unit"`
	Savings            int           `json:"savings,omitempty"`
	HypotheticalYearly int           `json:"hypothetical_yearly"`
	Highlight          bool          `json:"highlight,omitempty"`
}
