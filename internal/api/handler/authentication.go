package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/storymaker/tracking-api/internal/usecases/authenticating"
	"github.com/storymaker/tracking-api/pkg/apiErrors"
	"github.com/storymaker/tracking-api/pkg/log"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeRequest(w, r, &req); err != nil {
			writeRequestError(w, r, err)
			return
		}

		session, err := service.Login(r.Context(), req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, session)
	}
}

// handleLoginError nunca expõe o motivo interno da falha além do código
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if apiErrors.StatusFor(authErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error("Erro interno ao realizar login")
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado ao realizar login")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
}
