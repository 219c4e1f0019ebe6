package http

import (
	"net/http"

	"github.com/MKhiriev/go-circuit-records/models"
)

func (h *Handler) createAnnouncement(w http.ResponseWriter, r *http.Request) {
	var in models.AnnouncementInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	announcement, err := h.services.AnnouncementService.Create(r.Context(), currentUser(r), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, announcement, http.StatusOK)
}

func (h *Handler) listAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.services.AnnouncementService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, announcements, http.StatusOK)
}
