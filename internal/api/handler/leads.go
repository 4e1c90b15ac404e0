package handler

import (
	"net/http"

	"github.com/storymaker/tracking-api/internal/usecases/capturing"
	"github.com/storymaker/tracking-api/pkg/apiErrors"
)

// Mesma mensagem para duplicado e falha de armazenamento
const msgLeadFailed = "Não foi possível concluir o cadastro. Tente novamente."

func SubmitLead(recorder capturing.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LeadRequest
		if err := decodeRequest(w, r, &req); err != nil {
			writeRequestError(w, r, err)
			return
		}

		outcome := recorder.Save(r.Context(), capturing.Submission{
			Email:            req.Email,
			Source:           req.Source,
			MarketingConsent: req.MarketingConsent,
			PrivacyConsent:   req.PrivacyConsent,
		})

		switch outcome {
		case capturing.OutcomeSaved:
			writeJSON(w, r, http.StatusCreated, map[string]string{"status": string(outcome)})
		case capturing.OutcomeInvalidEmail:
			apiErrors.WriteError(w, apiErrors.ErrInvalidEmail, "Informe um e-mail válido.", nil)
		case capturing.OutcomeConsentRequired:
			apiErrors.WriteError(w, apiErrors.ErrConsentRequired, "É necessário aceitar a política de privacidade.", nil)
		case capturing.OutcomeDuplicate:
			apiErrors.WriteError(w, apiErrors.ErrLeadConflict, msgLeadFailed, nil)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, msgLeadFailed, nil)
		}
	}
}
