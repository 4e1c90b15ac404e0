package handler

import (
	"net/http"

	"github.com/storymaker/tracking-api/internal/scheduler"
	"github.com/storymaker/tracking-api/pkg/apiErrors"
	"github.com/storymaker/tracking-api/pkg/log"
)

const CronJobTypeDigest = "digest"

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	ReportDigestService *scheduler.ReportDigestService
}

// RunCronJob executa manualmente a cron job cronType
func RunCronJob(services CronJobServices, cronType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch cronType {
		case CronJobTypeDigest:
			if services.ReportDigestService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de resumo do dashboard não disponível", nil)
				return
			}

			log.ForContext(r.Context()).Info("Resumo do dashboard solicitado manualmente")
			if !services.ReportDigestService.TriggerManualSync(r.Context()) {
				writeJSON(w, r, http.StatusConflict, map[string]any{
					"message": "Cron job já está em execução",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: digest", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ReportDigestService != nil {
			status[CronJobTypeDigest] = services.ReportDigestService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
