package api

import (
	"errors"
	"net/http"

	"social-dashboard/internal/services"
	"social-dashboard/internal/state"
	"social-dashboard/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// Handler holds service dependencies
type Handler struct {
	accounts  *services.AccountService
	messaging *services.MessagingService
	bots      *services.BotService
	scraper   *services.ScraperService
	dashboard *services.DashboardService
	notify    *services.NotifyService
	logger    *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(accounts *services.AccountService, messaging *services.MessagingService, bots *services.BotService, scraper *services.ScraperService, dashboard *services.DashboardService, notify *services.NotifyService, logger *zap.Logger) *Handler {
	return &Handler{
		accounts:  accounts,
		messaging: messaging,
		bots:      bots,
		scraper:   scraper,
		dashboard: dashboard,
		notify:    notify,
		logger:    logger,
	}
}

// SetupRoutes configures all page and API routes
func SetupRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/", handler.Landing)
	r.GET("/dashboard", handler.Dashboard)
	r.GET("/health", handler.Health)

	api := r.Group("/api/v1")
	{
		// Accounts
		api.GET("/accounts", handler.ListAccounts)
		api.GET("/accounts/:id", handler.GetAccount)
		api.POST("/accounts", handler.CreateAccount)
		api.DELETE("/accounts/:id", handler.DeleteAccount)
		api.POST("/accounts/:id/delete", handler.DeleteAccount)

		// Message templates
		api.GET("/templates", handler.ListTemplates)
		api.POST("/templates", handler.CreateTemplate)
		api.DELETE("/templates/:id", handler.DeleteTemplate)
		api.POST("/templates/:id/delete", handler.DeleteTemplate)

		// Campaigns
		api.GET("/campaigns", handler.ListCampaigns)
		api.POST("/campaigns", handler.CreateCampaign)
		api.POST("/campaigns/:id/toggle", handler.ToggleCampaign)
		api.DELETE("/campaigns/:id", handler.DeleteCampaign)
		api.POST("/campaigns/:id/delete", handler.DeleteCampaign)

		// Chatbots
		api.GET("/bots", handler.ListBots)
		api.POST("/bots", handler.CreateBot)
		api.POST("/bots/:id/toggle", handler.ToggleBot)
		api.DELETE("/bots/:id", handler.DeleteBot)
		api.POST("/bots/:id/delete", handler.DeleteBot)

		// Bot test chat
		api.GET("/chat/messages", handler.ListMessages)
		api.POST("/chat/messages", handler.SendMessage)

		// Scraper
		api.GET("/scraper/rules", handler.ListRules)
		api.POST("/scraper/rules", handler.CreateRule)
		api.POST("/scraper/rules/:id/toggle", handler.ToggleRule)
		api.DELETE("/scraper/rules/:id", handler.DeleteRule)
		api.POST("/scraper/rules/:id/delete", handler.DeleteRule)
		api.GET("/scraper/content", handler.ListContent)
		api.POST("/scraper/content/:id/comment", handler.PostComment)
		api.POST("/scraper/run", handler.RunScrape)

		// Dashboard and notifications
		api.GET("/dashboard/stats", handler.GetStats)
		api.GET("/dashboard/activity", handler.GetActivity)
		api.GET("/notifications", handler.ListNotifications)
	}
}

// isForm reports whether the request came from an HTML form
func isForm(c *gin.Context) bool {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		return true
	}
	return false
}

// respond redirects form posts back to their dashboard tab and answers JSON otherwise
func respond(c *gin.Context, tab string, status int, body any) {
	if isForm(c) {
		c.Redirect(http.StatusSeeOther, "/dashboard?tab="+tab)
		return
	}
	c.JSON(status, body)
}

// fail maps service errors to HTTP statuses. Form posts are redirected
// without an error, like a disabled submit button.
func (h *Handler) fail(c *gin.Context, tab string, err error) {
	if isForm(c) {
		c.Redirect(http.StatusSeeOther, "/dashboard?tab="+tab)
		return
	}

	switch {
	case errors.Is(err, services.ErrIncompleteDraft), errors.Is(err, services.ErrEmptyText):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func removed(c *gin.Context, tab string, found bool, what string) {
	if !found && !isForm(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
		return
	}
	respond(c, tab, http.StatusOK, gin.H{"message": what + " deleted successfully"})
}

// Health reports liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListAccounts retrieves all accounts
func (h *Handler) ListAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.accounts.List())
}

// GetAccount retrieves a single account
func (h *Handler) GetAccount(c *gin.Context) {
	account, found := h.accounts.Get(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, account)
}

// CreateAccount adds a new pending account
func (h *Handler) CreateAccount(c *gin.Context) {
	var draft state.AccountDraft
	if err := c.ShouldBind(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accounts.Add(draft)
	if err != nil {
		h.fail(c, web.TabAccounts, err)
		return
	}
	respond(c, web.TabAccounts, http.StatusCreated, account)
}

// DeleteAccount removes an account
func (h *Handler) DeleteAccount(c *gin.Context) {
	removed(c, web.TabAccounts, h.accounts.Remove(c.Param("id")), "Account")
}

// ListTemplates retrieves all message templates
func (h *Handler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.messaging.Templates())
}

// CreateTemplate adds a new message template
func (h *Handler) CreateTemplate(c *gin.Context) {
	var draft state.TemplateDraft
	if err := c.ShouldBind(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl, err := h.messaging.AddTemplate(draft)
	if err != nil {
		h.fail(c, web.TabMessages, err)
		return
	}
	respond(c, web.TabMessages, http.StatusCreated, tmpl)
}

// DeleteTemplate removes a message template
func (h *Handler) DeleteTemplate(c *gin.Context) {
	removed(c, web.TabMessages, h.messaging.RemoveTemplate(c.Param("id")), "Template")
}

// ListCampaigns retrieves all campaigns with resolved references
func (h *Handler) ListCampaigns(c *gin.Context) {
	c.JSON(http.StatusOK, h.messaging.CampaignViews(h.accounts.List()))
}

// CreateCampaign adds a new inactive campaign
func (h *Handler) CreateCampaign(c *gin.Context) {
	var draft state.CampaignDraft
	if err := c.ShouldBind(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.messaging.AddCampaign(draft)
	if err != nil {
		h.fail(c, web.TabMessages, err)
		return
	}
	respond(c, web.TabMessages, http.StatusCreated, campaign)
}

// ToggleCampaign flips a campaign's active flag
func (h *Handler) ToggleCampaign(c *gin.Context) {
	campaign, err := h.messaging.ToggleCampaign(c.Param("id"))
	if err != nil {
		h.fail(c, web.TabMessages, err)
		return
	}
	respond(c, web.TabMessages, http.StatusOK, campaign)
}

// DeleteCampaign removes a campaign
func (h *Handler) DeleteCampaign(c *gin.Context) {
	removed(c, web.TabMessages, h.messaging.RemoveCampaign(c.Param("id")), "Campaign")
}

// ListBots retrieves all bot configurations
func (h *Handler) ListBots(c *gin.Context) {
	c.JSON(http.StatusOK, h.bots.Bots())
}

// CreateBot adds a new inactive bot configuration
func (h *Handler) CreateBot(c *gin.Context) {
	var draft state.BotDraft
	if err := c.ShouldBind(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bot, err := h.bots.AddBot(draft)
	if err != nil {
		h.fail(c, web.TabBots, err)
		return
	}
	respond(c, web.TabBots, http.StatusCreated, bot)
}

// ToggleBot flips a bot's active flag
func (h *Handler) ToggleBot(c *gin.Context) {
	bot, err := h.bots.ToggleBot(c.Param("id"))
	if err != nil {
		h.fail(c, web.TabBots, err)
		return
	}
	respond(c, web.TabBots, http.StatusOK, bot)
}

// DeleteBot removes a bot configuration
func (h *Handler) DeleteBot(c *gin.Context) {
	removed(c, web.TabBots, h.bots.RemoveBot(c.Param("id")), "Bot")
}

// ListMessages retrieves the test chat transcript
func (h *Handler) ListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, h.bots.Messages())
}

// SendMessage appends a user message; the canned reply follows later
func (h *Handler) SendMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" form:"content"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.bots.SendMessage(req.Content)
	if err != nil {
		h.fail(c, web.TabBots, err)
		return
	}
	respond(c, web.TabBots, http.StatusAccepted, msg)
}

// ListRules retrieves all scraping rules
func (h *Handler) ListRules(c *gin.Context) {
	c.JSON(http.StatusOK, h.scraper.Rules())
}

// CreateRule adds a new inactive scraping rule
func (h *Handler) CreateRule(c *gin.Context) {
	var draft state.RuleDraft
	if err := c.ShouldBind(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.scraper.AddRule(draft)
	if err != nil {
		h.fail(c, web.TabScraper, err)
		return
	}
	respond(c, web.TabScraper, http.StatusCreated, rule)
}

// ToggleRule flips a rule's active flag
func (h *Handler) ToggleRule(c *gin.Context) {
	rule, err := h.scraper.ToggleRule(c.Param("id"))
	if err != nil {
		h.fail(c, web.TabScraper, err)
		return
	}
	respond(c, web.TabScraper, http.StatusOK, rule)
}

// DeleteRule removes a scraping rule
func (h *Handler) DeleteRule(c *gin.Context) {
	removed(c, web.TabScraper, h.scraper.RemoveRule(c.Param("id")), "Rule")
}

// ListContent retrieves the scraped posts
func (h *Handler) ListContent(c *gin.Context) {
	c.JSON(http.StatusOK, h.scraper.Content())
}

// PostComment marks a scraped post as commented
func (h *Handler) PostComment(c *gin.Context) {
	var req struct {
		Text string `json:"text" form:"text"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.scraper.PostComment(c.Param("id"), req.Text)
	if err != nil {
		h.fail(c, web.TabScraper, err)
		return
	}
	respond(c, web.TabScraper, http.StatusOK, item)
}

// RunScrape starts a simulated scrape
func (h *Handler) RunScrape(c *gin.Context) {
	h.scraper.RunScrape()
	respond(c, web.TabScraper, http.StatusAccepted, gin.H{"message": "Scrape started"})
}

// GetStats retrieves dashboard statistics
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Stats())
}

// GetActivity retrieves the recent activity rows
func (h *Handler) GetActivity(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.RecentActivity(10))
}

// ListNotifications retrieves notification history
func (h *Handler) ListNotifications(c *gin.Context) {
	notifications, err := h.notify.Recent(100)
	if err != nil {
		h.fail(c, web.TabOverview, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}
