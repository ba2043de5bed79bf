package models

// BillingPeriod selects which price a pricing plan shows
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingAnnual  BillingPeriod = "annual"
)

// Feature is one entry of the landing page feature grid
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// PlanFeature is one line of a pricing plan, possibly not included
type PlanFeature struct {
	Title    string
	Included bool
}

// PricingPlan is a pricing tier resolved for one billing period
type PricingPlan struct {
	Name        string
	Description string
	Price       string
	Period      string
	Features    []PlanFeature
	ButtonText  string
	Highlighted bool
}

// NavLink is a navigation entry
type NavLink struct {
	Label string
	Href  string
}

// FooterSection is a titled column of footer links
type FooterSection struct {
	Title string
	Links []NavLink
}

// Stat is a dashboard overview counter
type Stat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Icon  string `json:"icon"`
}

// Activity is one row of the dashboard recent activity card
type Activity struct {
	Title  string `json:"title"`
	Action string `json:"action"`
	Time   string `json:"time"`
}
