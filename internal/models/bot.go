package models

import "time"

// Provider identifies the chat-completion backend a bot would call
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderCustomAPI Provider = "custom-api"
	ProviderOther     Provider = "other"
)

// Valid reports whether p is a known provider
func (p Provider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderCustomAPI, ProviderOther:
		return true
	}
	return false
}

// BotConfig is the request shape a chatbot integration would send
type BotConfig struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Provider    Provider `json:"provider"`
	APIKey      string   `json:"api_key,omitempty"`
	APIEndpoint string   `json:"api_endpoint,omitempty"`
	Prompt      string   `json:"prompt,omitempty"`
	IsActive    bool     `json:"is_active"`
	AccountIDs  []string `json:"account_ids"`
}

// EntityID returns the bot identity
func (b BotConfig) EntityID() string { return b.ID }

// Toggled returns a copy with the active flag negated
func (b BotConfig) Toggled() BotConfig {
	b.IsActive = !b.IsActive
	return b
}

// Role is the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry of the bot test transcript
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// EntityID returns the message identity
func (m ChatMessage) EntityID() string { return m.ID }
