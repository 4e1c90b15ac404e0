package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/storymaker/tracking-api/internal/usecases/authenticating"
	"github.com/storymaker/tracking-api/pkg/log"
)

type contextKey string

const (
	ContextKeyDashboard contextKey = "dashboard"
)

// AuthMiddleware anexa as claims da sessão do dashboard ao contexto quando há
// token válido no header Authorization ou no cookie. Não bloqueia a requisição:
// as rotas protegidas usam DashboardOnly.
func AuthMiddleware(authService authenticating.Authenticator, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims := authService.AutoAuthClaims(); claims != nil {
				next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
				return
			}

			tokenString := tokenFromRequest(r, cookieName)
			if tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Debug("Token do dashboard recusado")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	authHeader := r.Header.Get("Authorization")
	if tokenString, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(tokenString)
	}

	if cookieName == "" {
		return ""
	}

	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyDashboard, claims)
}

// ClaimsFromContext devolve nil quando a requisição não está autenticada
func ClaimsFromContext(ctx context.Context) *domain.Claims {
	claims, ok := ctx.Value(ContextKeyDashboard).(*domain.Claims)
	if !ok {
		return nil
	}
	return claims
}
