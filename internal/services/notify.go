package services

import (
	"fmt"
	"time"

	"social-dashboard/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Panel names used to tag notifications
const (
	PanelAccounts = "accounts"
	PanelMessages = "messages"
	PanelScraper  = "scraper"
	PanelBots     = "bots"
)

// Notifier interface for different notification sinks
type Notifier interface {
	Send(notification *models.Notification) error
}

// NotifyService records transient notifications and fans them out to notifiers
type NotifyService struct {
	db        *gorm.DB
	notifiers []Notifier
	logger    *zap.Logger
	now       func() time.Time
}

// NewNotifyService creates a new notification service. A nil db keeps no history.
func NewNotifyService(db *gorm.DB, logger *zap.Logger, notifiers ...Notifier) *NotifyService {
	return &NotifyService{
		db:        db,
		notifiers: notifiers,
		logger:    logger,
		now:       time.Now,
	}
}

// Notify records a notification and sends it through all notifiers.
// Failures are logged and never reach the caller.
func (s *NotifyService) Notify(panel, title, description string) {
	if s == nil {
		return
	}

	notification := &models.Notification{
		Panel:       panel,
		Title:       title,
		Description: description,
		CreatedAt:   s.now(),
	}

	if s.db != nil {
		if err := s.db.Create(notification).Error; err != nil {
			s.logger.Error("Failed to record notification", zap.String("panel", panel), zap.Error(err))
		}
	}

	for _, notifier := range s.notifiers {
		if err := notifier.Send(notification); err != nil {
			s.logger.Error("Notifier failed",
				zap.String("notifier", fmt.Sprintf("%T", notifier)),
				zap.Error(err))
		}
	}
}

// Recent returns up to limit notifications, newest first
func (s *NotifyService) Recent(limit int) ([]models.Notification, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}

	var notifications []models.Notification
	if err := s.db.Order("created_at desc").Order("id desc").Limit(limit).Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// LogNotifier writes notifications to the application log
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new log notifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send logs the notification
func (l *LogNotifier) Send(notification *models.Notification) error {
	l.logger.Info(notification.Title,
		zap.String("panel", notification.Panel),
		zap.String("description", notification.Description))
	return nil
}
