package models

import "time"

// AccountStatus is the connection state of a managed X account
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
	AccountPending  AccountStatus = "pending"
)

// Account represents a managed social account
type Account struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"`     // Always "@"-prefixed
	ProfileName string        `json:"profile_name"` // Display name
	ProxyURL    string        `json:"proxy_url"`    // Proxy address, "No configurado" when unset
	Status      AccountStatus `json:"status"`
	LastActive  time.Time     `json:"last_active"`
}

// EntityID returns the account identity
func (a Account) EntityID() string { return a.ID }
