package middleware

import (
	"net/http"

	"github.com/storymaker/tracking-api/pkg/utils"
)

// ClientIP resolve o IP do visitante uma vez por requisição. Cabeçalhos de
// proxy só valem quando a conexão vem de um proxy em trusted.
func ClientIP(trusted utils.TrustedProxies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := trusted.ResolveClientIP(r)
			next.ServeHTTP(w, r.WithContext(utils.WithClientIP(r.Context(), ip)))
		})
	}
}
