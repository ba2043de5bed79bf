package services

import (
	"math"
	"time"

	"social-dashboard/internal/models"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

var spanishMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "Hace unos segundos", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "%s 1 minuto", DivBy: 1},
	{D: time.Hour, Format: "%s %d minutos", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s 1 hora", DivBy: 1},
	{D: humanize.Day, Format: "%s %d horas", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s 1 día", DivBy: 1},
	{D: math.MaxInt64, Format: "%s %d días", DivBy: humanize.Day},
}

// RelativeTime renders then relative to now in Spanish ("Hace 2 minutos")
func RelativeTime(then, now time.Time) string {
	return humanize.CustomRelTime(then, now, "Hace", "Dentro de", spanishMagnitudes)
}

// fallbackActivity is shown until the first notification is recorded
var fallbackActivity = []models.Activity{
	{Title: "Mensaje enviado", Action: "@usuario1 escribió a @destino1", Time: "Hace 2 minutos"},
	{Title: "Comentario publicado", Action: "@usuario2 comentó en una publicación de @influencer", Time: "Hace 15 minutos"},
	{Title: "Nuevo seguidor", Action: "@nuevocontacto sigue a @usuario1", Time: "Hace 1 hora"},
	{Title: "Mensaje programado enviado", Action: "Enviado desde @usuario2", Time: "Hace 3 horas"},
}

// DashboardService aggregates the overview tab from the live panels
type DashboardService struct {
	accounts  *AccountService
	messaging *MessagingService
	bots      *BotService
	scraper   *ScraperService
	notify    *NotifyService
	logger    *zap.Logger
	now       func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(accounts *AccountService, messaging *MessagingService, bots *BotService, scraper *ScraperService, notify *NotifyService, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		accounts:  accounts,
		messaging: messaging,
		bots:      bots,
		scraper:   scraper,
		notify:    notify,
		logger:    logger,
		now:       time.Now,
	}
}

// Stats returns the overview counters
func (s *DashboardService) Stats() []models.Stat {
	return []models.Stat{
		{Label: "Cuentas activas", Value: s.accounts.CountByStatus(models.AccountActive), Icon: "👤"},
		{Label: "Campañas activas", Value: s.messaging.ActiveCampaigns(), Icon: "✉️"},
		{Label: "Chatbots activos", Value: s.bots.ActiveBots(), Icon: "💬"},
		{Label: "Publicaciones monitorizadas", Value: len(s.scraper.Content()), Icon: "🔍"},
	}
}

// RecentActivity lists the latest notifications as activity rows
func (s *DashboardService) RecentActivity(limit int) []models.Activity {
	if limit <= 0 {
		return []models.Activity{}
	}

	notifications, err := s.notify.Recent(limit)
	if err != nil {
		s.logger.Warn("Failed to load recent activity", zap.Error(err))
	}
	if len(notifications) == 0 {
		if limit < len(fallbackActivity) {
			return fallbackActivity[:limit]
		}
		return fallbackActivity
	}

	now := s.now()
	activity := make([]models.Activity, 0, len(notifications))
	for _, n := range notifications {
		activity = append(activity, models.Activity{
			Title:  n.Title,
			Action: n.Description,
			Time:   RelativeTime(n.CreatedAt, now),
		})
	}
	return activity
}
