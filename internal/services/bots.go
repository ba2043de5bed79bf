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

// CannedReply is the assistant answer appended after every test message
const CannedReply = "Esta es una respuesta simulada del chatbot. En un entorno real, esta respuesta vendría de la API del proveedor seleccionado basándose en el prompt configurado."

// BotService owns the chatbot configuration and test chat panel state
type BotService struct {
	mu         sync.RWMutex
	bots       []models.BotConfig
	messages   []models.ChatMessage
	ids        state.IDGenerator
	notify     *NotifyService
	logger     *zap.Logger
	now        func() time.Time
	replyDelay time.Duration
	tasks      *delayedTasks
}

// NewBotService creates a new bot service
func NewBotService(bots []models.BotConfig, transcript []models.ChatMessage, replyDelay time.Duration, ids state.IDGenerator, notify *NotifyService, logger *zap.Logger) *BotService {
	return &BotService{
		bots:       state.Clone(bots),
		messages:   state.Clone(transcript),
		ids:        ids,
		notify:     notify,
		logger:     logger,
		now:        time.Now,
		replyDelay: replyDelay,
		tasks:      newDelayedTasks(),
	}
}

// Bots returns the configured bots
func (s *BotService) Bots() []models.BotConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.Clone(s.bots)
}

// AddBot appends an inactive bot configuration built from the draft
func (s *BotService) AddBot(draft state.BotDraft) (models.BotConfig, error) {
	s.mu.Lock()
	bots, bot, ok := state.SubmitBot(s.bots, draft, s.ids)
	s.bots = bots
	s.mu.Unlock()

	if !ok {
		return models.BotConfig{}, ErrIncompleteDraft
	}

	s.logger.Info("Bot added", zap.String("bot_id", bot.ID), zap.String("provider", string(bot.Provider)))
	s.notify.Notify(PanelBots, "Chatbot añadido", fmt.Sprintf("El chatbot \"%s\" ha sido configurado correctamente.", bot.Name))
	return bot, nil
}

// ToggleBot negates the active flag of a bot
func (s *BotService) ToggleBot(id string) (models.BotConfig, error) {
	s.mu.Lock()
	s.bots = state.ToggleActive(s.bots, id)
	bot, found := state.Find(s.bots, id)
	s.mu.Unlock()

	if !found {
		return models.BotConfig{}, fmt.Errorf("bot %s: %w", id, ErrNotFound)
	}

	s.logger.Info("Bot toggled", zap.String("bot_id", id), zap.Bool("active", bot.IsActive))
	return bot, nil
}

// RemoveBot deletes a bot configuration
func (s *BotService) RemoveBot(id string) bool {
	s.mu.Lock()
	_, found := state.Find(s.bots, id)
	s.bots = state.Remove(s.bots, id)
	s.mu.Unlock()

	if found {
		s.logger.Info("Bot removed", zap.String("bot_id", id))
	}
	return found
}

// ActiveBots returns how many bots are active
func (s *BotService) ActiveBots() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, b := range s.bots {
		if b.IsActive {
			count++
		}
	}
	return count
}

// Messages returns the test chat transcript
func (s *BotService) Messages() []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.Clone(s.messages)
}

// SendMessage appends a user message immediately and schedules the canned
// assistant reply. Each call schedules its own reply.
func (s *BotService) SendMessage(text string) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, ErrEmptyText
	}

	msg := models.ChatMessage{
		ID:        s.ids.NewID(),
		Role:      models.RoleUser,
		Content:   text,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	s.messages = state.Append(s.messages, msg)
	s.mu.Unlock()

	s.tasks.after(s.replyDelay, s.reply)
	return msg, nil
}

func (s *BotService) reply() {
	msg := models.ChatMessage{
		ID:        s.ids.NewID(),
		Role:      models.RoleAssistant,
		Content:   CannedReply,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	s.messages = state.Append(s.messages, msg)
	s.mu.Unlock()

	s.logger.Debug("Simulated bot reply appended", zap.String("message_id", msg.ID))
}

// Wait blocks until every scheduled reply was appended or cancelled
func (s *BotService) Wait() {
	s.tasks.wait()
}

// Close cancels pending replies
func (s *BotService) Close() {
	s.tasks.close()
}
