package services

import (
	"time"

	"social-dashboard/internal/models"
	"social-dashboard/internal/state"
)

// Seed is the demo data every panel starts with
type Seed struct {
	Accounts   []models.Account
	Templates  []models.MessageTemplate
	Campaigns  []models.Campaign
	Bots       []models.BotConfig
	Transcript []models.ChatMessage
	Rules      []models.ScrapingRule
	Content    []models.ScrapedContent
}

func mustParse(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// NewSeed builds the demo data, drawing every identity from ids so seeded
// and created records never collide.
func NewSeed(ids state.IDGenerator, now time.Time) Seed {
	accounts := []models.Account{
		{
			ID:          ids.NewID(),
			Username:    "@usuario1",
			ProfileName: "Usuario Ejemplo 1",
			ProxyURL:    "proxy1.example.com:8080",
			Status:      models.AccountActive,
			LastActive:  mustParse("2023-09-15T14:30:00Z"),
		},
		{
			ID:          ids.NewID(),
			Username:    "@usuario2",
			ProfileName: "Usuario Ejemplo 2",
			ProxyURL:    "proxy2.example.com:8080",
			Status:      models.AccountInactive,
			LastActive:  mustParse("2023-09-10T09:15:00Z"),
		},
	}

	templates := []models.MessageTemplate{
		{
			ID:      ids.NewID(),
			Name:    "Plantilla de bienvenida",
			Content: "Hola, soy {{nombre}}. Gracias por conectar conmigo en X. Me gustaría saber más sobre tu trabajo.",
		},
		{
			ID:      ids.NewID(),
			Name:    "Promoción producto",
			Content: "Hola {{nombre}}, estoy ofreciendo {{producto}} con un descuento especial. ¿Te interesaría saber más?",
		},
	}

	campaigns := []models.Campaign{
		{
			ID:          ids.NewID(),
			Name:        "Campaña de alcance SEO",
			AccountID:   accounts[0].ID,
			TemplateID:  templates[0].ID,
			TargetUsers: []string{"@usuario1", "@usuario2"},
			IsActive:    true,
			CreatedAt:   mustParse("2023-09-15T14:30:00Z"),
		},
	}

	bots := []models.BotConfig{
		{
			ID:         ids.NewID(),
			Name:       "Asistente de ventas",
			Provider:   models.ProviderOpenAI,
			Prompt:     "Eres un asistente de ventas amable que ayuda a responder preguntas sobre nuestros productos de marketing digital.",
			IsActive:   true,
			AccountIDs: []string{accounts[0].ID},
		},
	}

	transcript := []models.ChatMessage{
		{
			ID:        ids.NewID(),
			Role:      models.RoleUser,
			Content:   "Hola, me interesa saber más sobre sus servicios de SEO.",
			Timestamp: now,
		},
		{
			ID:        ids.NewID(),
			Role:      models.RoleAssistant,
			Content:   "¡Hola! Gracias por tu interés en nuestros servicios de SEO. Ofrecemos optimización de palabras clave, análisis de competencia, y estrategias de posicionamiento personalizadas. ¿Hay algún aspecto específico que te interese conocer?",
			Timestamp: now,
		},
	}

	rules := []models.ScrapingRule{
		{
			ID:              ids.NewID(),
			Name:            "Monitoreo SEO",
			TargetUsers:     []string{"@usuario1", "@usuario2", "@seoexperto"},
			Frequency:       models.FrequencyDaily,
			Keywords:        []string{"SEO", "marketing digital", "posicionamiento"},
			AutoComment:     true,
			CommentTemplate: "Interesante perspectiva sobre {{keyword}}. Has considerado también {{suggestion}}?",
			IsActive:        true,
		},
	}

	content := []models.ScrapedContent{
		{
			ID:        ids.NewID(),
			Username:  "@usuario1",
			Content:   "Este es un post de ejemplo sobre marketing digital y SEO que ha sido scrapeado automáticamente.",
			Timestamp: mustParse("2023-09-15T14:30:00Z"),
			URL:       "https://twitter.com/usuario1/status/123456789",
		},
		{
			ID:               ids.NewID(),
			Username:         "@usuario2",
			Content:          "¿Cuáles son las mejores estrategias de SEO para 2023? Comparto mis pensamientos en este hilo...",
			Timestamp:        mustParse("2023-09-14T10:15:00Z"),
			URL:              "https://twitter.com/usuario2/status/987654321",
			HasBeenCommented: true,
		},
	}

	return Seed{
		Accounts:   accounts,
		Templates:  templates,
		Campaigns:  campaigns,
		Bots:       bots,
		Transcript: transcript,
		Rules:      rules,
		Content:    content,
	}
}
