package scheduler

import (
	"sync"

	"social-dashboard/internal/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scraper is the simulated scrape the scheduler fires
type Scraper interface {
	RunScrape()
}

// Scheduler fires a simulated scrape for every active rule at its frequency
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	scraper Scraper
	entries map[string]cron.EntryID // rule id -> cron entry
	logger  *zap.Logger
}

// NewScheduler creates a new scheduler
func NewScheduler(scraper Scraper, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		scraper: scraper,
		entries: make(map[string]cron.EntryID),
		logger:  logger,
	}
}

// Start registers the initial rules and starts the scheduler
func (s *Scheduler) Start(rules []models.ScrapingRule) {
	s.Sync(rules)
	s.cron.Start()
	s.logger.Info("Scheduler started", zap.Int("jobs", s.Jobs()))
}

// Stop stops the scheduler; running jobs are not waited for
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("Scheduler stopped")
}

// Sync replaces the registered jobs with one job per active rule
func (s *Scheduler) Sync(rules []models.ScrapingRule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ruleID, entryID := range s.entries {
		s.cron.Remove(entryID)
		delete(s.entries, ruleID)
	}

	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}

		ruleID, name := rule.ID, rule.Name
		entryID, err := s.cron.AddFunc(rule.Frequency.CronSpec(), func() {
			s.logger.Info("Starting scheduled scrape", zap.String("rule_id", ruleID), zap.String("rule", name))
			s.scraper.RunScrape()
		})
		if err != nil {
			s.logger.Warn("Failed to schedule rule", zap.String("rule_id", ruleID), zap.Error(err))
			continue
		}
		s.entries[ruleID] = entryID
	}
}

// Jobs returns how many rules are scheduled
func (s *Scheduler) Jobs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Scheduled reports whether rule id has a job
func (s *Scheduler) Scheduled(ruleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[ruleID]
	return ok
}
