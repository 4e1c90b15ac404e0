package handler

import (
	"net/http"

	"github.com/storymaker/tracking-api/internal/usecases/tracking"
	"github.com/storymaker/tracking-api/pkg/utils"
)

// TrackClick aceita o clique e registra em background. O cliente recebe 202
// mesmo que a gravação falhe depois.
func TrackClick(tracker tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClickRequest
		if err := decodeRequest(w, r, &req); err != nil {
			writeRequestError(w, r, err)
			return
		}

		tracker.TrackClick(r.Context(), req.ButtonType, req.Metadata, tracking.Ambient{
			IP:        utils.ClientIP(r),
			UserAgent: r.UserAgent(),
			Referrer:  r.Referer(),
		})

		writeJSON(w, r, http.StatusAccepted, map[string]string{"status": "accepted"})
	}
}
