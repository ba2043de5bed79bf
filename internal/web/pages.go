package web

import "social-dashboard/internal/models"

// Dashboard tabs
const (
	TabOverview = "overview"
	TabAccounts = "accounts"
	TabMessages = "messages"
	TabScraper  = "scraper"
	TabBots     = "bots"
)

// Tab is one dashboard tab link
type Tab struct {
	ID    string
	Label string
}

// Tabs lists the dashboard tabs in display order
var Tabs = []Tab{
	{ID: TabOverview, Label: "Resumen"},
	{ID: TabAccounts, Label: "Cuentas"},
	{ID: TabMessages, Label: "Mensajes"},
	{ID: TabScraper, Label: "Monitorización"},
	{ID: TabBots, Label: "Chatbots"},
}

// ParseTab returns tab when known, otherwise the overview tab
func ParseTab(tab string) string {
	for _, t := range Tabs {
		if t.ID == tab {
			return tab
		}
	}
	return TabOverview
}

// LandingPage is the data of the landing page
type LandingPage struct {
	Brand    string
	Nav      []models.NavLink
	Features []models.Feature
	Plans    []models.PricingPlan
	Billing  models.BillingPeriod
	Footer   []models.FooterSection
	Year     int
}

// DashboardPage is the data of the dashboard page
type DashboardPage struct {
	Brand         string
	Nav           []models.NavLink
	Tab           string
	Tabs          []Tab
	Stats         []models.Stat
	Activity      []models.Activity
	Notifications []models.Notification
	Accounts      []models.Account
	Templates     []models.MessageTemplate
	Campaigns     []models.CampaignView
	Bots          []models.BotConfig
	Messages      []models.ChatMessage
	Rules         []models.ScrapingRule
	Content       []models.ScrapedContent
	Providers     []models.Provider
	Frequencies   []models.Frequency
}
