package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/storymaker/tracking-api/pkg/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	htmlmin "github.com/tdewolff/minify/v2/html"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	DashboardPath       = "/dashboard"
	DashboardExportPath = "/dashboard/export/"
	displayTimeLayout   = "2006-01-02 15:04"
)

// Views renderiza as páginas do dashboard e minifica o HTML antes de enviar
type Views struct {
	templates *template.Template
	minifier  *minify.M
}

// dashboardView é o modelo das páginas login.html e dashboard.html
type dashboardView struct {
	State      domain.DashboardState
	Mode       domain.DisplayMode
	Report     *domain.Report
	LoginError string
	AutoAuth   bool
	ExportBase string
}

func NewViews() (*Views, error) {
	templates, err := template.New("").Funcs(template.FuncMap{
		"datetime": formatDateTime,
		"consent":  formatConsent,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	m := minify.New()
	m.AddFunc("text/html", htmlmin.Minify)
	m.AddFunc("text/css", css.Minify)

	return &Views{templates: templates, minifier: m}, nil
}

func (v *Views) Render(w http.ResponseWriter, r *http.Request, status int, name string, data dashboardView) {
	var buffer bytes.Buffer
	if err := v.templates.ExecuteTemplate(&buffer, name, data); err != nil {
		log.ForContext(r.Context()).WithError(err).Errorf("Erro ao renderizar %s", name)
		http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
		return
	}

	page, err := v.minifier.Bytes("text/html", buffer.Bytes())
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Debug("Minificação falhou, enviando HTML original")
		page = buffer.Bytes()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(page); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar página")
	}
}

func formatDateTime(value any) string {
	switch t := value.(type) {
	case time.Time:
		if t.IsZero() {
			return "-"
		}
		return t.UTC().Format(displayTimeLayout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return "-"
		}
		return t.UTC().Format(displayTimeLayout)
	default:
		return "-"
	}
}

func formatConsent(consent bool) string {
	if consent {
		return "Sim"
	}
	return "Não"
}
