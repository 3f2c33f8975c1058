package web

import (
	"net/http"

	"github.com/iamigrante/portal/internal/services"
)

// Theme values stored in the theme cookie
const (
	ThemeCookie = "theme"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// ThemeFromRequest returns the theme chosen by the visitor, light by default
func ThemeFromRequest(r *http.Request) string {
	c, err := r.Cookie(ThemeCookie)
	if err == nil && c.Value == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// PracticeArea is one entry of the services page
type PracticeArea struct {
	Name         string
	Summary      string
	DocumentType string
}

// PracticeAreas lists the services advertised on the public site
func PracticeAreas() []PracticeArea {
	return []PracticeArea{
		{
			Name:         "Visas de trabajo",
			Summary:      "Preparamos y presentamos solicitudes de visas laborales temporales y permanentes.",
			DocumentType: "visa-trabajo",
		},
		{
			Name:         "Residencia permanente",
			Summary:      "Te acompañamos en el proceso de ajuste de estatus y obtención de la tarjeta de residencia.",
			DocumentType: "residencia",
		},
		{
			Name:         "Asilo",
			Summary:      "Representación en solicitudes de asilo afirmativo y defensivo.",
			DocumentType: "asilo",
		},
		{
			Name:         "Reunificación familiar",
			Summary:      "Peticiones familiares para reunir a tu familia en el país.",
			DocumentType: "reunificacion",
		},
	}
}

// DashboardLink is a shortcut shown on a dashboard shell
type DashboardLink struct {
	Label string
	Href  string
}

// DashboardShell describes the dashboard layout for one role
type DashboardShell struct {
	Role        services.Role
	Title       string
	Description string
	Links       []DashboardLink
}

var dashboards = map[services.Role]DashboardShell{
	services.RoleAdmin: {
		Role:        services.RoleAdmin,
		Title:       "Panel de administración",
		Description: "Gestiona usuarios, casos y la configuración del despacho.",
		Links: []DashboardLink{
			{Label: "Usuarios", Href: "/api/users"},
			{Label: "Documentación de la API", Href: "/docs"},
		},
	},
	services.RoleLawyer: {
		Role:        services.RoleLawyer,
		Title:       "Panel del abogado",
		Description: "Revisa tus casos asignados y el avance de cada cliente.",
		Links: []DashboardLink{
			{Label: "Servicios", Href: "/servicios"},
		},
	},
	services.RoleParalegal: {
		Role:        services.RoleParalegal,
		Title:       "Panel del paralegal",
		Description: "Organiza documentos y prepara expedientes para revisión.",
		Links: []DashboardLink{
			{Label: "Cuestionario general", Href: "/documentos/general"},
		},
	},
	services.RoleClient: {
		Role:        services.RoleClient,
		Title:       "Panel del cliente",
		Description: "Consulta el estado de tu caso y completa los cuestionarios pendientes.",
		Links: []DashboardLink{
			{Label: "Completar cuestionario", Href: "/documentos/general"},
			{Label: "Contactar al despacho", Href: "/contacto"},
		},
	},
}

// Dashboard returns the shell for a role
func Dashboard(role services.Role) (DashboardShell, bool) {
	d, ok := dashboards[role]
	return d, ok
}

// QuestionnaireView feeds the questionnaire page
type QuestionnaireView struct {
	DocumentType string
	Questions    []services.DocumentQuestion
}
