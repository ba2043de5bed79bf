package models

import (
	"regexp"
	"time"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}\s]+)\s*\}\}`)

// MessageTemplate represents a direct-message body with {{placeholder}} tokens
type MessageTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// EntityID returns the template identity
func (t MessageTemplate) EntityID() string { return t.ID }

// Placeholders lists the distinct token names in order of first appearance.
// Tokens are shown to the user but never substituted.
func (t MessageTemplate) Placeholders() []string {
	matches := placeholderPattern.FindAllStringSubmatch(t.Content, -1)
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}

// Campaign sends a template from one account to a list of target users
type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AccountID   string    `json:"account_id"`
	TemplateID  string    `json:"template_id"`
	TargetUsers []string  `json:"target_users"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// EntityID returns the campaign identity
func (c Campaign) EntityID() string { return c.ID }

// Toggled returns a copy with the active flag negated
func (c Campaign) Toggled() Campaign {
	c.IsActive = !c.IsActive
	return c
}

// CampaignView is a campaign with its loose references resolved for display
type CampaignView struct {
	Campaign
	TemplateName    string `json:"template_name"`    // Raw template id when dangling
	AccountUsername string `json:"account_username"` // Raw account id when dangling
}
