package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/storymaker/tracking-api/internal/usecases/reporting"
	"github.com/storymaker/tracking-api/pkg/apiErrors"
	"github.com/storymaker/tracking-api/pkg/log"
	"github.com/storymaker/tracking-api/pkg/utils"
)

const maxExportLimit = 10000

// ExportDataset baixa um dataset em CSV. Filtros aceitos (apenas para leads):
// source, since, until (YYYY-MM-DD, inclusivo), limit e order=asc.
func ExportDataset(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dataset, err := reporting.ParseDataset(httprouter.ParamsFromContext(r.Context()).ByName("dataset"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Dataset desconhecido", nil)
			return
		}

		filters, err := parseLeadFilters(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var buffer bytes.Buffer
		if err := reporter.Export(r.Context(), dataset, filters, &buffer); err != nil {
			reportErr := reporting.ClassifyError(err)
			logger.WithError(err).WithField("kind", reportErr.Kind).Error("Erro ao exportar CSV")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, reportErr.Message, map[string]any{
				"kind": reportErr.Kind,
			})
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, dataset.FileName(time.Now())))
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(buffer.Bytes()); err != nil {
			logger.WithError(err).Warn("Erro ao enviar CSV")
		}
	}
}

func parseLeadFilters(query url.Values) (domain.LeadFilters, error) {
	filters := domain.LeadFilters{
		Source:    query.Get("source"),
		Ascending: query.Get("order") == "asc",
	}

	since, err := utils.ParseDate(query.Get("since"))
	if err != nil {
		return filters, fmt.Errorf("data inicial inválida, use %s", utils.DateLayout)
	}
	filters.StartDate = since

	until, err := utils.ParseDate(query.Get("until"))
	if err != nil {
		return filters, fmt.Errorf("data final inválida, use %s", utils.DateLayout)
	}
	if until != nil {
		end := until.AddDate(0, 0, 1)
		filters.EndDate = &end
	}

	if since != nil && filters.EndDate != nil && !since.Before(*filters.EndDate) {
		return filters, errors.New("data inicial deve ser anterior ou igual à final")
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return filters, errors.New("limit deve ser um inteiro positivo")
		}
		filters.Limit = min(limit, maxExportLimit)
	}

	return filters, nil
}
