package http

import (
	"net/http"

	"github.com/MKhiriev/go-circuit-records/internal/app"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createMember(w http.ResponseWriter, r *http.Request) {
	var in models.MemberInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	member, err := h.services.MemberService.Create(r.Context(), currentUser(r), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, member, http.StatusOK)
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	society, err := societyQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filter := models.MemberFilter{
		Society: society,
		Search:  r.URL.Query().Get("search"),
	}

	members, err := h.services.MemberService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, members, http.StatusOK)
}

func (h *Handler) getMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.services.MemberService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, member, http.StatusOK)
}

func (h *Handler) updateMember(w http.ResponseWriter, r *http.Request) {
	var in models.MemberInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	member, err := h.services.MemberService.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, member, http.StatusOK)
}

func (h *Handler) deleteMember(w http.ResponseWriter, r *http.Request) {
	if err := h.services.MemberService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgMemberDeleted}, http.StatusOK)
}
