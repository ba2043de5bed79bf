// Package web holds the server-rendered pages of the landing site and dashboard.
package web

import (
	"embed"
	"html/template"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates
var templatesFS embed.FS

// FuncMap is shared by every page template
var FuncMap = template.FuncMap{
	// Casers and printers keep state, so each call gets its own.
	"title": func(s string) string {
		return cases.Title(language.Spanish).String(s)
	},
	"number": func(n int) string {
		return message.NewPrinter(language.Spanish).Sprintf("%d", n)
	},
	"datetime": func(t time.Time) string {
		return t.Format("02/01/2006 15:04")
	},
	"join": func(items []string) string {
		return strings.Join(items, ", ")
	},
	"contains": func(items []string, item string) bool {
		return slices.Contains(items, item)
	},
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(FuncMap).ParseFS(templatesFS, "templates/*.tmpl")
}
