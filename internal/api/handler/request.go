package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/storymaker/tracking-api/pkg/apiErrors"
	"github.com/storymaker/tracking-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New(validator.WithRequiredStructEnabled())

// Limite do corpo das rotas públicas
const maxBodyBytes = 64 << 10

type ClickRequest struct {
	ButtonType string         `json:"button_type" validate:"required,max=100"`
	Metadata   map[string]any `json:"metadata"`
}

type LeadRequest struct {
	Email            string `json:"email" validate:"required,max=320"`
	Source           string `json:"source" validate:"max=100"`
	MarketingConsent bool   `json:"marketing_consent"`
	PrivacyConsent   bool   `json:"privacy_consent"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

var errEmptyBody = errors.New("corpo da requisição vazio")

// decodeRequest decodifica o corpo JSON em dst e aplica as tags validate
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}

	return validate.Struct(dst)
}

// writeRequestError traduz erros de decodificação e validação para a resposta padrão
func writeRequestError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s:%s", fe.Field(), fe.Tag()))
		}
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados inválidos ou ausentes", fields)
		return
	}

	log.ForContext(r.Context()).WithError(err).Debug("Corpo de requisição inválido")
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}
