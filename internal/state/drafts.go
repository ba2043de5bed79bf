package state

import (
	"fmt"
	"strings"
	"time"

	"social-dashboard/internal/models"
)

// NoProxy is stored when an account is added without a proxy address
const NoProxy = "No configurado"

// SplitList splits a comma separated list, trimming items and dropping empty ones
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// AccountDraft is the add-account form
type AccountDraft struct {
	Username string `json:"username" form:"username"`
	ProxyURL string `json:"proxy_url" form:"proxy_url"`
}

// Valid reports whether the draft can be submitted
func (d AccountDraft) Valid() bool {
	return !blank(d.Username)
}

// SubmitAccount appends a pending account built from d.
// An invalid draft returns the collection unchanged and ok=false.
func SubmitAccount(accounts []models.Account, d AccountDraft, ids IDGenerator, now time.Time) ([]models.Account, models.Account, bool) {
	if !d.Valid() {
		return accounts, models.Account{}, false
	}

	username := strings.TrimSpace(d.Username)
	if !strings.HasPrefix(username, "@") {
		username = "@" + username
	}
	proxy := strings.TrimSpace(d.ProxyURL)
	if proxy == "" {
		proxy = NoProxy
	}

	account := models.Account{
		ID:          ids.NewID(),
		Username:    username,
		ProfileName: fmt.Sprintf("Usuario %d", len(accounts)+1),
		ProxyURL:    proxy,
		Status:      models.AccountPending,
		LastActive:  now,
	}
	return Append(accounts, account), account, true
}

// TemplateDraft is the new-template form
type TemplateDraft struct {
	Name    string `json:"name" form:"name"`
	Content string `json:"content" form:"content"`
}

// Valid reports whether the draft can be submitted
func (d TemplateDraft) Valid() bool {
	return !blank(d.Name) && !blank(d.Content)
}

// SubmitTemplate appends a template built from d
func SubmitTemplate(templates []models.MessageTemplate, d TemplateDraft, ids IDGenerator) ([]models.MessageTemplate, models.MessageTemplate, bool) {
	if !d.Valid() {
		return templates, models.MessageTemplate{}, false
	}

	tmpl := models.MessageTemplate{
		ID:      ids.NewID(),
		Name:    strings.TrimSpace(d.Name),
		Content: d.Content,
	}
	return Append(templates, tmpl), tmpl, true
}

// CampaignDraft is the new-campaign form; TargetUsers is comma separated
type CampaignDraft struct {
	Name        string `json:"name" form:"name"`
	AccountID   string `json:"account_id" form:"account_id"`
	TemplateID  string `json:"template_id" form:"template_id"`
	TargetUsers string `json:"target_users" form:"target_users"`
}

// Valid reports whether the draft can be submitted
func (d CampaignDraft) Valid() bool {
	return !blank(d.Name) && !blank(d.AccountID) && !blank(d.TemplateID)
}

// SubmitCampaign appends an inactive campaign built from d
func SubmitCampaign(campaigns []models.Campaign, d CampaignDraft, ids IDGenerator, now time.Time) ([]models.Campaign, models.Campaign, bool) {
	if !d.Valid() {
		return campaigns, models.Campaign{}, false
	}

	campaign := models.Campaign{
		ID:          ids.NewID(),
		Name:        strings.TrimSpace(d.Name),
		AccountID:   d.AccountID,
		TemplateID:  d.TemplateID,
		TargetUsers: SplitList(d.TargetUsers),
		IsActive:    false,
		CreatedAt:   now,
	}
	return Append(campaigns, campaign), campaign, true
}

// BotDraft is the new-chatbot form
type BotDraft struct {
	Name        string          `json:"name" form:"name"`
	Provider    models.Provider `json:"provider" form:"provider"`
	APIKey      string          `json:"api_key" form:"api_key"`
	APIEndpoint string          `json:"api_endpoint" form:"api_endpoint"`
	Prompt      string          `json:"prompt" form:"prompt"`
	AccountIDs  []string        `json:"account_ids" form:"account_ids"`
}

func (d BotDraft) provider() models.Provider {
	if d.Provider == "" {
		return models.ProviderOpenAI
	}
	return d.Provider
}

// Valid reports whether the draft can be submitted
func (d BotDraft) Valid() bool {
	return !blank(d.Name) && d.provider().Valid()
}

// SubmitBot appends an inactive bot configuration built from d
func SubmitBot(bots []models.BotConfig, d BotDraft, ids IDGenerator) ([]models.BotConfig, models.BotConfig, bool) {
	if !d.Valid() {
		return bots, models.BotConfig{}, false
	}

	accountIDs := make([]string, 0, len(d.AccountIDs))
	for _, id := range d.AccountIDs {
		if !blank(id) {
			accountIDs = append(accountIDs, id)
		}
	}

	bot := models.BotConfig{
		ID:          ids.NewID(),
		Name:        strings.TrimSpace(d.Name),
		Provider:    d.provider(),
		APIKey:      d.APIKey,
		APIEndpoint: d.APIEndpoint,
		Prompt:      d.Prompt,
		IsActive:    false,
		AccountIDs:  accountIDs,
	}
	return Append(bots, bot), bot, true
}

// RuleDraft is the new-scraping-rule form; lists are comma separated
type RuleDraft struct {
	Name            string           `json:"name" form:"name"`
	TargetUsers     string           `json:"target_users" form:"target_users"`
	Frequency       models.Frequency `json:"frequency" form:"frequency"`
	Keywords        string           `json:"keywords" form:"keywords"`
	AutoComment     bool             `json:"auto_comment" form:"auto_comment"`
	CommentTemplate string           `json:"comment_template" form:"comment_template"`
}

func (d RuleDraft) frequency() models.Frequency {
	if d.Frequency == "" {
		return models.FrequencyDaily
	}
	return d.Frequency
}

// Valid reports whether the draft can be submitted
func (d RuleDraft) Valid() bool {
	return !blank(d.Name) && len(SplitList(d.TargetUsers)) > 0 && d.frequency().Valid()
}

// SubmitRule appends an inactive scraping rule built from d
func SubmitRule(rules []models.ScrapingRule, d RuleDraft, ids IDGenerator) ([]models.ScrapingRule, models.ScrapingRule, bool) {
	if !d.Valid() {
		return rules, models.ScrapingRule{}, false
	}

	rule := models.ScrapingRule{
		ID:              ids.NewID(),
		Name:            strings.TrimSpace(d.Name),
		TargetUsers:     SplitList(d.TargetUsers),
		Frequency:       d.frequency(),
		Keywords:        SplitList(d.Keywords),
		AutoComment:     d.AutoComment,
		CommentTemplate: d.CommentTemplate,
		IsActive:        false,
	}
	return Append(rules, rule), rule, true
}

// MarkCommented returns a new collection with the matched item flagged as commented
func MarkCommented(content []models.ScrapedContent, id string) []models.ScrapedContent {
	return Update(content, id, func(c models.ScrapedContent) models.ScrapedContent {
		c.HasBeenCommented = true
		return c
	})
}
