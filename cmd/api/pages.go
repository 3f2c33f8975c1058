package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iamigrante/portal/internal/services"
	"github.com/iamigrante/portal/internal/web"
)

// registerPages mounts the HTML pages on the router
func registerPages(r chi.Router, app *App) {
	r.Get("/", app.staticPage(web.PageHome, web.Page{
		Title:       "Abogados de inmigración",
		Description: "Asesoría legal migratoria para personas, familias y empresas.",
		Active:      "home",
	}))
	r.Get("/servicios", app.staticPage(web.PageServices, web.Page{
		Title:       "Servicios",
		Description: "Áreas de práctica en las que podemos ayudarte.",
		Active:      "services",
		Data:        web.PracticeAreas(),
	}))
	r.Get("/nosotros", app.staticPage(web.PageAbout, web.Page{
		Title:       "Nosotros",
		Description: "Conoce al equipo detrás del despacho.",
		Active:      "about",
	}))
	r.Get("/contacto", app.staticPage(web.PageContact, web.Page{
		Title:       "Contacto",
		Description: "Escríbenos o llámanos para agendar una consulta.",
		Active:      "contact",
	}))
	r.Get("/dashboard/{role}", app.dashboardPage)
	r.Get("/documentos/{documentType}", app.questionnairePage)
	r.NotFound(app.notFoundPage)
}

func (app *App) staticPage(name string, page web.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.render(w, r, http.StatusOK, name, page)
	}
}

func (app *App) dashboardPage(w http.ResponseWriter, r *http.Request) {
	role, err := services.ParseRole(chi.URLParam(r, "role"))
	if err != nil {
		app.notFoundPage(w, r)
		return
	}
	shell, ok := web.Dashboard(role)
	if !ok {
		app.notFoundPage(w, r)
		return
	}

	app.render(w, r, http.StatusOK, web.PageDashboard, web.Page{
		Title:       shell.Title,
		Description: shell.Description,
		Active:      "dashboard",
		Data:        shell,
	})
}

func (app *App) questionnairePage(w http.ResponseWriter, r *http.Request) {
	documentType := chi.URLParam(r, "documentType")
	questions := app.Catalog.QuestionsForDocument(r.Context(), documentType)

	app.render(w, r, http.StatusOK, web.PageQuestionnaire, web.Page{
		Title:       "Cuestionario de documentos",
		Description: "Responde estas preguntas para que preparemos tu documento.",
		Data: web.QuestionnaireView{
			DocumentType: documentType,
			Questions:    questions,
		},
	})
}

func (app *App) notFoundPage(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, web.PageNotFound, web.Page{
		Title:       "Página no encontrada",
		Description: "La página que buscas no existe.",
	})
}

// render fills the per-request fields shared by every page and writes it
func (app *App) render(w http.ResponseWriter, r *http.Request, status int, name string, page web.Page) {
	user := app.Users.Current(r.Context())
	page.User = &user
	page.Theme = web.ThemeFromRequest(r)

	if err := app.Renderer.Render(w, status, name, page); err != nil {
		app.Logger.Error("Failed to render page", "error", err, "page", name, "path", r.URL.Path)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}
