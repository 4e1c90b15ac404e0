package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/storymaker/tracking-api/infrastructure/repository"
	"github.com/storymaker/tracking-api/pkg/log"
)

// ReadinessChecker é satisfeito por *repository.Backend
type ReadinessChecker interface {
	Mode() repository.Mode
	Ping(ctx context.Context) error
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			log.L.WithError(err).Warn("Erro ao responder healthcheck")
		}
	})
}

// ReadinessHandler considera o modo degradado pronto; só uma falha de ping com
// banco configurado devolve 503.
func ReadinessHandler(backend ReadinessChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"status": "ok",
			"mode":   backend.Mode(),
		}

		err := backend.Ping(r.Context())
		if err != nil && !errors.Is(err, repository.ErrNotConfigured) {
			log.ForContext(r.Context()).WithError(err).Warn("Banco indisponível na verificação de prontidão")
			response["status"] = "unavailable"
			writeJSON(w, r, http.StatusServiceUnavailable, response)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}
