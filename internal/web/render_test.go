package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamigrante/portal/internal/services"
)

var testSite = Site{
	FirmName:     "Bufete Prueba",
	ContactEmail: "hola@example.com",
	Phone:        "555-0100",
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(testSite)
	require.NoError(t, err)
	r.now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }
	return r
}

func render(t *testing.T, r *Renderer, status int, name string, page Page) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, r.Render(w, status, name, page))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return w, doc
}

func TestRender_SharedChrome(t *testing.T) {
	r := newTestRenderer(t)

	for _, name := range []string{PageHome, PageAbout, PageContact, PageNotFound} {
		t.Run(name, func(t *testing.T) {
			w, doc := render(t, r, http.StatusOK, name, Page{Title: "Título", Description: "Descripción"})

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, "Título | Bufete Prueba", doc.Find("title").Text())
			assert.Equal(t, 1, doc.Find("nav#navbar").Length())
			assert.Equal(t, 1, doc.Find("#theme-toggle").Length())
			assert.Contains(t, doc.Find("footer#footer").Text(), "2026 Bufete Prueba")
			assert.Contains(t, doc.Find("footer#footer").Text(), "hola@example.com")
			assert.Equal(t, "light", doc.Find("html").AttrOr("data-theme", ""))
		})
	}
}

func TestRender_ActiveNavAndTheme(t *testing.T) {
	r := newTestRenderer(t)

	_, doc := render(t, r, http.StatusOK, PageAbout, Page{Title: "Nosotros", Active: "about", Theme: ThemeDark})

	assert.Equal(t, "dark", doc.Find("html").AttrOr("data-theme", ""))
	assert.Equal(t, "/nosotros", doc.Find("nav a.active").AttrOr("href", ""))
	assert.Equal(t, "Modo claro", doc.Find("#theme-toggle").Text())
}

func TestRender_Status(t *testing.T) {
	r := newTestRenderer(t)
	w, _ := render(t, r, http.StatusNotFound, PageNotFound, Page{Title: "No encontrado"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRender_UnknownPage(t *testing.T) {
	r := newTestRenderer(t)
	w := httptest.NewRecorder()
	require.Error(t, r.Render(w, http.StatusOK, "missing", Page{}))
	assert.Empty(t, w.Body.String())
}

func TestRender_Services(t *testing.T) {
	r := newTestRenderer(t)
	_, doc := render(t, r, http.StatusOK, PageServices, Page{Title: "Servicios", Data: PracticeAreas()})

	items := doc.Find("#practice-areas li")
	assert.Equal(t, len(PracticeAreas()), items.Length())
	assert.Equal(t, "/documentos/visa-trabajo", items.First().Find("a").AttrOr("href", ""))
}

func TestRender_Dashboards(t *testing.T) {
	r := newTestRenderer(t)
	user := services.DefaultUsers()[3]

	for _, role := range services.Roles {
		t.Run(string(role), func(t *testing.T) {
			shell, ok := Dashboard(role)
			require.True(t, ok)

			_, doc := render(t, r, http.StatusOK, PageDashboard, Page{
				Title:       shell.Title,
				Description: shell.Description,
				Active:      "dashboard",
				User:        &user,
				Data:        shell,
			})

			section := doc.Find("section#dashboard")
			assert.Equal(t, string(role), section.AttrOr("data-role", ""))
			assert.Equal(t, shell.Title, section.Find("h1").Text())
			assert.Equal(t, len(shell.Links), section.Find(".dashboard-links li").Length())
			assert.Contains(t, section.Find(".greeting").Text(), "Cliente Uno")
			assert.Equal(t, "/dashboard/client", doc.Find("nav a.active").AttrOr("href", ""))
		})
	}
}

func TestDashboard_UnknownRole(t *testing.T) {
	_, ok := Dashboard("judge")
	assert.False(t, ok)
}

func TestRender_Questionnaire(t *testing.T) {
	r := newTestRenderer(t)
	catalog := services.NewTemplateCatalog(services.DefaultQuestionTemplates())
	questions := catalog.QuestionsForDocument(context.Background(), "pasaporte")

	_, doc := render(t, r, http.StatusOK, PageQuestionnaire, Page{
		Title: "Cuestionario",
		Data:  QuestionnaireView{DocumentType: "pasaporte", Questions: questions},
	})

	form := doc.Find("form#questionnaire")
	assert.Equal(t, "pasaporte", form.AttrOr("data-document-type", ""))
	assert.Equal(t, 3, form.Find("fieldset.question").Length())

	radios := form.Find(`fieldset[data-question-id="q1"] input[type="radio"]`)
	assert.Equal(t, 4, radios.Length())
	assert.Equal(t, "Visa de trabajo", radios.First().AttrOr("value", ""))

	text := form.Find(`fieldset[data-question-id="q2"] input[type="text"]`)
	assert.Equal(t, 1, text.Length())
	_, required := text.Attr("required")
	assert.True(t, required)
}

func TestThemeFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
		want   string
	}{
		{name: "no cookie", want: ThemeLight},
		{name: "dark", cookie: &http.Cookie{Name: ThemeCookie, Value: "dark"}, want: ThemeDark},
		{name: "light", cookie: &http.Cookie{Name: ThemeCookie, Value: "light"}, want: ThemeLight},
		{name: "garbage", cookie: &http.Cookie{Name: ThemeCookie, Value: "neon"}, want: ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			assert.Equal(t, tt.want, ThemeFromRequest(req))
		})
	}
}
