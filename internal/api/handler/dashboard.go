package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/storymaker/tracking-api/internal/usecases/authenticating"
	"github.com/storymaker/tracking-api/internal/usecases/reporting"
	"github.com/storymaker/tracking-api/pkg/apiErrors"
	"github.com/storymaker/tracking-api/pkg/middleware"
)

// DashboardCookie define o cookie de sessão usado pelas páginas HTML
type DashboardCookie struct {
	Name   string
	Secure bool
}

func (c DashboardCookie) issue(session *domain.Session) *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c DashboardCookie) clear() *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// GetReport devolve o relatório em JSON. O estado de erro também responde 200,
// com o campo error preenchido.
func GetReport(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, reporter.Load(r.Context()))
	}
}

// DashboardHome mostra o formulário de login sem sessão e o relatório com sessão
func DashboardHome(reporter reporting.Reporter, views *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r.Context())
		if claims == nil {
			views.Render(w, r, http.StatusOK, "login.html", dashboardView{State: domain.DashboardUnauthenticated})
			return
		}

		report := reporter.Load(r.Context())

		views.Render(w, r, http.StatusOK, "dashboard.html", dashboardView{
			State:      report.State,
			Mode:       domain.ParseDisplayMode(r.URL.Query().Get("view")),
			Report:     report,
			AutoAuth:   claims.AutoAuth,
			ExportBase: DashboardExportPath,
		})
	}
}

func DashboardLogin(service authenticating.Authenticator, views *Views, cookie DashboardCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			views.Render(w, r, http.StatusBadRequest, "login.html", dashboardView{
				State:      domain.DashboardUnauthenticated,
				LoginError: "Formato de requisição inválido",
			})
			return
		}

		session, err := service.Login(r.Context(), r.PostFormValue("password"))
		if err != nil {
			status, message := http.StatusInternalServerError, "Erro interno ao realizar login"

			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				status, message = apiErrors.StatusFor(authErr.Code), authErr.Details
			}

			views.Render(w, r, status, "login.html", dashboardView{
				State:      domain.DashboardUnauthenticated,
				LoginError: message,
			})
			return
		}

		http.SetCookie(w, cookie.issue(session))
		http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
	}
}

func DashboardLogout(cookie DashboardCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, cookie.clear())
		http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
	}
}
