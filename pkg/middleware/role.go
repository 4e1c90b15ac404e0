package middleware

import (
	"net/http"

	"github.com/storymaker/tracking-api/pkg/apiErrors"
	"github.com/storymaker/tracking-api/pkg/log"
)

// RequireDashboard restringe a rota a sessões do dashboard. onDenied decide a
// resposta para requisições sem claims.
func RequireDashboard(onDenied http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ClaimsFromContext(r.Context()) == nil {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Tentativa de acesso ao dashboard sem autenticação")
				onDenied(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// DashboardOnly responde 401 em JSON para rotas da API
func DashboardOnly() func(http.Handler) http.Handler {
	return RequireDashboard(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão do dashboard ausente ou inválida", nil)
	})
}

// DashboardPage redireciona páginas HTML para o formulário de login
func DashboardPage(loginPath string) func(http.Handler) http.Handler {
	return RequireDashboard(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
	})
}
