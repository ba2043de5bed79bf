package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"social-dashboard/internal/models"
	"social-dashboard/internal/state"

	"go.uber.org/zap"
)

// ScrapeSimulation configures the fake scrape completion
type ScrapeSimulation struct {
	Delay      time.Duration
	FoundCount int
}

// ScraperService owns the content scraper panel state. Scrapes are simulated:
// they only emit notifications and never add content.
type ScraperService struct {
	mu          sync.RWMutex
	rules       []models.ScrapingRule
	content     []models.ScrapedContent
	ids         state.IDGenerator
	notify      *NotifyService
	logger      *zap.Logger
	sim         ScrapeSimulation
	tasks       *delayedTasks
	onRulesHook func([]models.ScrapingRule)
	hookMu      sync.Mutex // serializes hook deliveries
}

// NewScraperService creates a new scraper service
func NewScraperService(rules []models.ScrapingRule, content []models.ScrapedContent, sim ScrapeSimulation, ids state.IDGenerator, notify *NotifyService, logger *zap.Logger) *ScraperService {
	return &ScraperService{
		rules:   state.Clone(rules),
		content: state.Clone(content),
		ids:     ids,
		notify:  notify,
		logger:  logger,
		sim:     sim,
		tasks:   newDelayedTasks(),
	}
}

// OnRulesChanged registers a hook called with the rules after every rule change
func (s *ScraperService) OnRulesChanged(hook func([]models.ScrapingRule)) {
	s.mu.Lock()
	s.onRulesHook = hook
	s.mu.Unlock()
}

// rulesChanged delivers the current rules to the hook. The snapshot is taken
// while holding hookMu, so the last delivery always carries the newest rules.
func (s *ScraperService) rulesChanged() {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()

	s.mu.RLock()
	hook := s.onRulesHook
	rules := state.Clone(s.rules)
	s.mu.RUnlock()

	if hook != nil {
		hook(rules)
	}
}

// Rules returns the current scraping rules
func (s *ScraperService) Rules() []models.ScrapingRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.Clone(s.rules)
}

// AddRule appends an inactive rule built from the draft
func (s *ScraperService) AddRule(draft state.RuleDraft) (models.ScrapingRule, error) {
	s.mu.Lock()
	rules, rule, ok := state.SubmitRule(s.rules, draft, s.ids)
	s.rules = rules
	s.mu.Unlock()

	if !ok {
		return models.ScrapingRule{}, ErrIncompleteDraft
	}

	s.logger.Info("Scraping rule added", zap.String("rule_id", rule.ID), zap.String("frequency", string(rule.Frequency)))
	s.notify.Notify(PanelScraper, "Regla de scraping creada", fmt.Sprintf("Se ha creado la regla \"%s\" correctamente.", rule.Name))
	s.rulesChanged()
	return rule, nil
}

// ToggleRule negates the active flag of a rule
func (s *ScraperService) ToggleRule(id string) (models.ScrapingRule, error) {
	s.mu.Lock()
	s.rules = state.ToggleActive(s.rules, id)
	rule, found := state.Find(s.rules, id)
	s.mu.Unlock()

	if !found {
		return models.ScrapingRule{}, fmt.Errorf("rule %s: %w", id, ErrNotFound)
	}

	s.logger.Info("Scraping rule toggled", zap.String("rule_id", id), zap.Bool("active", rule.IsActive))
	s.rulesChanged()
	return rule, nil
}

// RemoveRule deletes a rule
func (s *ScraperService) RemoveRule(id string) bool {
	s.mu.Lock()
	_, found := state.Find(s.rules, id)
	s.rules = state.Remove(s.rules, id)
	s.mu.Unlock()

	if found {
		s.logger.Info("Scraping rule removed", zap.String("rule_id", id))
		s.rulesChanged()
	}
	return found
}

// Content returns the scraped posts
func (s *ScraperService) Content() []models.ScrapedContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.Clone(s.content)
}

// PostComment marks a post as commented. The comment text is not stored.
func (s *ScraperService) PostComment(contentID, text string) (models.ScrapedContent, error) {
	if strings.TrimSpace(text) == "" {
		return models.ScrapedContent{}, ErrEmptyText
	}

	s.mu.Lock()
	if _, found := state.Find(s.content, contentID); !found {
		s.mu.Unlock()
		return models.ScrapedContent{}, fmt.Errorf("content %s: %w", contentID, ErrNotFound)
	}
	s.content = state.MarkCommented(s.content, contentID)
	item, _ := state.Find(s.content, contentID)
	s.mu.Unlock()

	s.logger.Info("Comment posted", zap.String("content_id", contentID))
	s.notify.Notify(PanelScraper, "Comentario publicado", "Tu comentario ha sido enviado correctamente.")
	return item, nil
}

// RunScrape emits the "started" notification now and the "completed"
// notification after the configured delay. Each call is independent.
func (s *ScraperService) RunScrape() {
	s.logger.Info("Manual scrape started")
	s.notify.Notify(PanelScraper, "Scraping iniciado", "Se está realizando el scraping manualmente. Esto puede tardar unos segundos.")

	found := s.sim.FoundCount
	s.tasks.after(s.sim.Delay, func() {
		s.logger.Info("Manual scrape completed", zap.Int("found", found))
		s.notify.Notify(PanelScraper, "Scraping completado", fmt.Sprintf("Se han encontrado %d nuevos contenidos.", found))
	})
}

// Wait blocks until every scheduled completion fired or was cancelled
func (s *ScraperService) Wait() {
	s.tasks.wait()
}

// Close cancels pending scrape completions
func (s *ScraperService) Close() {
	s.tasks.close()
}

// ActiveRules returns how many rules are active
func (s *ScraperService) ActiveRules() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.rules {
		if r.IsActive {
			count++
		}
	}
	return count
}
