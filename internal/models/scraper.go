package models

import "time"

// Frequency is how often a scraping rule would run
type Frequency string

const (
	FrequencyHourly Frequency = "hourly"
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Valid reports whether f is a known frequency
func (f Frequency) Valid() bool {
	return f.CronSpec() != ""
}

// CronSpec returns the cron descriptor for f, or "" when unknown
func (f Frequency) CronSpec() string {
	switch f {
	case FrequencyHourly:
		return "@hourly"
	case FrequencyDaily:
		return "@daily"
	case FrequencyWeekly:
		return "@weekly"
	}
	return ""
}

// Label returns the Spanish label shown on rule cards
func (f Frequency) Label() string {
	switch f {
	case FrequencyHourly:
		return "Cada hora"
	case FrequencyDaily:
		return "Diaria"
	}
	return "Semanal"
}

// ScrapingRule describes which users to monitor and what to do with their posts
type ScrapingRule struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	TargetUsers     []string  `json:"target_users"`
	Frequency       Frequency `json:"frequency"`
	Keywords        []string  `json:"keywords"`
	AutoComment     bool      `json:"auto_comment"`
	CommentTemplate string    `json:"comment_template"`
	IsActive        bool      `json:"is_active"`
}

// EntityID returns the rule identity
func (r ScrapingRule) EntityID() string { return r.ID }

// Toggled returns a copy with the active flag negated
func (r ScrapingRule) Toggled() ScrapingRule {
	r.IsActive = !r.IsActive
	return r
}

// ScrapedContent is a post collected from a monitored user
type ScrapedContent struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Content          string    `json:"content"`
	Timestamp        time.Time `json:"timestamp"`
	URL              string    `json:"url"`
	HasBeenCommented bool      `json:"has_been_commented"`
}

// EntityID returns the content identity
func (c ScrapedContent) EntityID() string { return c.ID }
