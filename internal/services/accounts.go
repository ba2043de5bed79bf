package services

import (
	"fmt"
	"sync"
	"time"

	"social-dashboard/internal/models"
	"social-dashboard/internal/state"

	"go.uber.org/zap"
)

// AccountService owns the account manager panel state
type AccountService struct {
	mu       sync.RWMutex
	accounts []models.Account
	ids      state.IDGenerator
	notify   *NotifyService
	logger   *zap.Logger
	now      func() time.Time
}

// NewAccountService creates a new account service seeded with accounts
func NewAccountService(seed []models.Account, ids state.IDGenerator, notify *NotifyService, logger *zap.Logger) *AccountService {
	return &AccountService{
		accounts: state.Clone(seed),
		ids:      ids,
		notify:   notify,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns the current accounts
func (s *AccountService) List() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.Clone(s.accounts)
}

// Get returns a single account
func (s *AccountService) Get(id string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.Find(s.accounts, id)
}

// Add appends a pending account built from the draft
func (s *AccountService) Add(draft state.AccountDraft) (models.Account, error) {
	s.mu.Lock()
	accounts, account, ok := state.SubmitAccount(s.accounts, draft, s.ids, s.now())
	s.accounts = accounts
	s.mu.Unlock()

	if !ok {
		return models.Account{}, ErrIncompleteDraft
	}

	s.logger.Info("Account added", zap.String("account_id", account.ID), zap.String("username", account.Username))
	s.notify.Notify(PanelAccounts, "Cuenta añadida", fmt.Sprintf("La cuenta %s está pendiente de conexión.", account.Username))
	return account, nil
}

// Remove deletes the account with id; removing an unknown id is a no-op
func (s *AccountService) Remove(id string) bool {
	s.mu.Lock()
	account, found := state.Find(s.accounts, id)
	s.accounts = state.Remove(s.accounts, id)
	s.mu.Unlock()

	if found {
		s.logger.Info("Account removed", zap.String("account_id", id))
		s.notify.Notify(PanelAccounts, "Cuenta eliminada", fmt.Sprintf("Se ha eliminado la cuenta %s.", account.Username))
	}
	return found
}

// CountByStatus returns how many accounts have status
func (s *AccountService) CountByStatus(status models.AccountStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, a := range s.accounts {
		if a.Status == status {
			count++
		}
	}
	return count
}
