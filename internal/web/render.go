// Package web renders the public pages and dashboard shells
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/iamigrante/portal/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names understood by Renderer
const (
	PageHome          = "home"
	PageServices      = "services"
	PageAbout         = "about"
	PageContact       = "contact"
	PageDashboard     = "dashboard"
	PageQuestionnaire = "questionnaire"
	PageNotFound      = "notfound"
)

var pageNames = []string{
	PageHome,
	PageServices,
	PageAbout,
	PageContact,
	PageDashboard,
	PageQuestionnaire,
	PageNotFound,
}

// Site holds firm details shown in the page chrome
type Site struct {
	FirmName     string
	ContactEmail string
	Phone        string
}

// Page is the view model every template receives
type Page struct {
	Title       string
	Description string
	Active      string
	Theme       string
	Site        Site
	User        *services.User
	Year        int
	Data        any
}

// Renderer executes the embedded page templates inside the shared layout
type Renderer struct {
	site  Site
	pages map[string]*template.Template
	now   func() time.Time
}

// NewRenderer parses every page template up front
func NewRenderer(site Site) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout").ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %q: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{site: site, pages: pages, now: time.Now}, nil
}

// Render writes the named page with the given status.
// The page is rendered into a buffer first so a template error never produces a partial body.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	page.Site = r.site
	page.Year = r.now().Year()
	if page.Theme == "" {
		page.Theme = ThemeLight
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("render page %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
