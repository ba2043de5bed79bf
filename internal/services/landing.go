package services

import "social-dashboard/internal/models"

// Brand is the product name shown in the navbar and footer
const Brand = "XMaster"

// NavLinks returns the navbar entries
func NavLinks() []models.NavLink {
	return []models.NavLink{
		{Label: "Inicio", Href: "/"},
		{Label: "Características", Href: "/#features"},
		{Label: "Precios", Href: "/#pricing"},
		{Label: "Panel", Href: "/dashboard"},
	}
}

// FooterSections returns the footer columns
func FooterSections() []models.FooterSection {
	return []models.FooterSection{
		{Title: "Producto", Links: []models.NavLink{
			{Label: "Características", Href: "/#features"},
			{Label: "Precios", Href: "/#pricing"},
			{Label: "Tutoriales", Href: "#"},
			{Label: "Actualizaciones", Href: "#"},
		}},
		{Title: "Compañía", Links: []models.NavLink{
			{Label: "Acerca de", Href: "#"},
			{Label: "Blog", Href: "#"},
			{Label: "Equipo", Href: "#"},
			{Label: "Contacto", Href: "#"},
		}},
		{Title: "Legal", Links: []models.NavLink{
			{Label: "Términos de servicio", Href: "#"},
			{Label: "Política de privacidad", Href: "#"},
			{Label: "Cookies", Href: "#"},
		}},
	}
}

// Features returns the landing page feature grid
func Features() []models.Feature {
	return []models.Feature{
		{Icon: "🧑", Title: "Simulación de interacción humana", Description: "Realiza interacciones naturales que simulan el comportamiento humano a través del navegador."},
		{Icon: "👥", Title: "Gestión de múltiples cuentas", Description: "Conecta y gestiona numerosas cuentas de X desde una única plataforma centralizada."},
		{Icon: "🛡️", Title: "Conexión proxy personalizada", Description: "Asigna un proxy diferente a cada cuenta para mayor seguridad y evitar bloqueos."},
		{Icon: "🤖", Title: "Integración con ChatBot", Description: "Conecta con APIs de chatbots para generar respuestas inteligentes y personalizadas."},
		{Icon: "🔍", Title: "Scraping de publicaciones", Description: "Extrae las publicaciones más recientes de cuentas seleccionadas para interactuar con ellas."},
		{Icon: "💬", Title: "Automatización de comentarios", Description: "Genera y publica comentarios inteligentes en las publicaciones escogidas automáticamente."},
	}
}

type planSpec struct {
	name, description string
	monthly, annual   string
	features          []models.PlanFeature
	buttonText        string
	highlighted       bool
}

var plans = []planSpec{
	{
		name:        "Básico",
		description: "Ideal para usuarios individuales que inician en X.",
		monthly:     "€19",
		annual:      "€190",
		features: []models.PlanFeature{
			{Title: "Hasta 2 cuentas de X", Included: true},
			{Title: "1 proxy personalizado", Included: true},
			{Title: "Scraping básico", Included: true},
			{Title: "Mensajes directos limitados", Included: true},
			{Title: "Respuestas automatizadas", Included: true},
			{Title: "Soporte por email", Included: true},
			{Title: "Integración con ChatBot", Included: false},
			{Title: "API avanzada", Included: false},
		},
		buttonText: "Comenzar gratis",
	},
	{
		name:        "Profesional",
		description: "Perfecto para profesionales y pequeños equipos.",
		monthly:     "€49",
		annual:      "€490",
		features: []models.PlanFeature{
			{Title: "Hasta 10 cuentas de X", Included: true},
			{Title: "5 proxies personalizados", Included: true},
			{Title: "Scraping avanzado", Included: true},
			{Title: "Mensajes directos ilimitados", Included: true},
			{Title: "Respuestas inteligentes", Included: true},
			{Title: "Soporte prioritario", Included: true},
			{Title: "Integración con ChatBot", Included: true},
			{Title: "API básica", Included: true},
		},
		buttonText:  "Suscribirme ahora",
		highlighted: true,
	},
	{
		name:        "Empresarial",
		description: "Para agencias y grandes equipos con necesidades avanzadas.",
		monthly:     "€99",
		annual:      "€990",
		features: []models.PlanFeature{
			{Title: "Cuentas ilimitadas", Included: true},
			{Title: "Proxies ilimitados", Included: true},
			{Title: "Scraping ilimitado", Included: true},
			{Title: "Mensajes directos ilimitados", Included: true},
			{Title: "IA avanzada para respuestas", Included: true},
			{Title: "Soporte dedicado 24/7", Included: true},
			{Title: "Integración con ChatBot avanzada", Included: true},
			{Title: "API completa y personalizable", Included: true},
		},
		buttonText: "Contactar ventas",
	},
}

// ParseBillingPeriod maps a query value to a billing period, defaulting to monthly
func ParseBillingPeriod(value string) models.BillingPeriod {
	if models.BillingPeriod(value) == models.BillingAnnual {
		return models.BillingAnnual
	}
	return models.BillingMonthly
}

// Plans returns the pricing tiers with prices for period
func Plans(period models.BillingPeriod) []models.PricingPlan {
	out := make([]models.PricingPlan, 0, len(plans))
	for _, p := range plans {
		plan := models.PricingPlan{
			Name:        p.name,
			Description: p.description,
			Price:       p.monthly,
			Period:      "/mes",
			Features:    p.features,
			ButtonText:  p.buttonText,
			Highlighted: p.highlighted,
		}
		if period == models.BillingAnnual {
			plan.Price = p.annual
			plan.Period = "/año"
		}
		out = append(out, plan)
	}
	return out
}
