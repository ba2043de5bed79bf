package services

import (
	"fmt"
	"sync"
	"time"

	"social-dashboard/internal/models"
	"social-dashboard/internal/state"

	"go.uber.org/zap"
)

// MessagingService owns the message templates and campaigns panel state
type MessagingService struct {
	mu        sync.RWMutex
	templates []models.MessageTemplate
	campaigns []models.Campaign
	ids       state.IDGenerator
	notify    *NotifyService
	logger    *zap.Logger
	now       func() time.Time
}

// NewMessagingService creates a new messaging service
func NewMessagingService(templates []models.MessageTemplate, campaigns []models.Campaign, ids state.IDGenerator, notify *NotifyService, logger *zap.Logger) *MessagingService {
	return &MessagingService{
		templates: state.Clone(templates),
		campaigns: state.Clone(campaigns),
		ids:       ids,
		notify:    notify,
		logger:    logger,
		now:       time.Now,
	}
}

// Templates returns the current templates
func (s *MessagingService) Templates() []models.MessageTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.Clone(s.templates)
}

// AddTemplate appends a template built from the draft
func (s *MessagingService) AddTemplate(draft state.TemplateDraft) (models.MessageTemplate, error) {
	s.mu.Lock()
	templates, tmpl, ok := state.SubmitTemplate(s.templates, draft, s.ids)
	s.templates = templates
	s.mu.Unlock()

	if !ok {
		return models.MessageTemplate{}, ErrIncompleteDraft
	}

	s.logger.Info("Template added", zap.String("template_id", tmpl.ID))
	s.notify.Notify(PanelMessages, "Plantilla creada", fmt.Sprintf("Se ha creado la plantilla \"%s\".", tmpl.Name))
	return tmpl, nil
}

// RemoveTemplate deletes a template. Campaigns that reference it keep the raw id.
func (s *MessagingService) RemoveTemplate(id string) bool {
	s.mu.Lock()
	_, found := state.Find(s.templates, id)
	s.templates = state.Remove(s.templates, id)
	s.mu.Unlock()

	if found {
		s.logger.Info("Template removed", zap.String("template_id", id))
	}
	return found
}

// Campaigns returns the current campaigns
func (s *MessagingService) Campaigns() []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.Clone(s.campaigns)
}

// AddCampaign appends an inactive campaign built from the draft.
// Account and template ids are not checked against their collections.
func (s *MessagingService) AddCampaign(draft state.CampaignDraft) (models.Campaign, error) {
	s.mu.Lock()
	campaigns, campaign, ok := state.SubmitCampaign(s.campaigns, draft, s.ids, s.now())
	s.campaigns = campaigns
	s.mu.Unlock()

	if !ok {
		return models.Campaign{}, ErrIncompleteDraft
	}

	s.logger.Info("Campaign added",
		zap.String("campaign_id", campaign.ID),
		zap.Int("targets", len(campaign.TargetUsers)))
	s.notify.Notify(PanelMessages, "Campaña creada", fmt.Sprintf("Se ha creado la campaña \"%s\".", campaign.Name))
	return campaign, nil
}

// ToggleCampaign negates the active flag of a campaign
func (s *MessagingService) ToggleCampaign(id string) (models.Campaign, error) {
	s.mu.Lock()
	s.campaigns = state.ToggleActive(s.campaigns, id)
	campaign, found := state.Find(s.campaigns, id)
	s.mu.Unlock()

	if !found {
		return models.Campaign{}, fmt.Errorf("campaign %s: %w", id, ErrNotFound)
	}

	s.logger.Info("Campaign toggled", zap.String("campaign_id", id), zap.Bool("active", campaign.IsActive))
	return campaign, nil
}

// RemoveCampaign deletes a campaign
func (s *MessagingService) RemoveCampaign(id string) bool {
	s.mu.Lock()
	_, found := state.Find(s.campaigns, id)
	s.campaigns = state.Remove(s.campaigns, id)
	s.mu.Unlock()

	if found {
		s.logger.Info("Campaign removed", zap.String("campaign_id", id))
	}
	return found
}

// CampaignViews resolves template names and account usernames by scanning
// the collections; dangling references render as the raw id.
func (s *MessagingService) CampaignViews(accounts []models.Account) []models.CampaignView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]models.CampaignView, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		view := models.CampaignView{
			Campaign:        c,
			TemplateName:    c.TemplateID,
			AccountUsername: c.AccountID,
		}
		if tmpl, ok := state.Find(s.templates, c.TemplateID); ok {
			view.TemplateName = tmpl.Name
		}
		if account, ok := state.Find(accounts, c.AccountID); ok {
			view.AccountUsername = account.Username
		}
		views = append(views, view)
	}
	return views
}

// ActiveCampaigns returns how many campaigns are active
func (s *MessagingService) ActiveCampaigns() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, c := range s.campaigns {
		if c.IsActive {
			count++
		}
	}
	return count
}
