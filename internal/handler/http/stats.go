package http

import "net/http"

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatsService.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, stats, http.StatusOK)
}
