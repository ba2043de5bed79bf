package api

import (
	"net/http"
	"time"

	"social-dashboard/internal/models"
	"social-dashboard/internal/services"
	"social-dashboard/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	providers   = []models.Provider{models.ProviderOpenAI, models.ProviderCustomAPI, models.ProviderOther}
	frequencies = []models.Frequency{models.FrequencyHourly, models.FrequencyDaily, models.FrequencyWeekly}
)

// Landing renders the marketing page; ?billing=annual switches the plans
func (h *Handler) Landing(c *gin.Context) {
	period := services.ParseBillingPeriod(c.Query("billing"))

	c.HTML(http.StatusOK, "landing", web.LandingPage{
		Brand:    services.Brand,
		Nav:      services.NavLinks(),
		Features: services.Features(),
		Plans:    services.Plans(period),
		Billing:  period,
		Footer:   services.FooterSections(),
		Year:     time.Now().Year(),
	})
}

// Dashboard renders the dashboard with the tab selected by ?tab
func (h *Handler) Dashboard(c *gin.Context) {
	notifications, err := h.notify.Recent(5)
	if err != nil {
		h.logger.Warn("Failed to load notifications", zap.Error(err))
	}

	accounts := h.accounts.List()
	c.HTML(http.StatusOK, "dashboard", web.DashboardPage{
		Brand:         services.Brand,
		Nav:           services.NavLinks(),
		Tab:           web.ParseTab(c.Query("tab")),
		Tabs:          web.Tabs,
		Stats:         h.dashboard.Stats(),
		Activity:      h.dashboard.RecentActivity(5),
		Notifications: notifications,
		Accounts:      accounts,
		Templates:     h.messaging.Templates(),
		Campaigns:     h.messaging.CampaignViews(accounts),
		Bots:          h.bots.Bots(),
		Messages:      h.bots.Messages(),
		Rules:         h.scraper.Rules(),
		Content:       h.scraper.Content(),
		Providers:     providers,
		Frequencies:   frequencies,
	})
}
