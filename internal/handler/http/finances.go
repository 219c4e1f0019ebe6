package http

import (
	"net/http"

	"github.com/MKhiriev/go-circuit-records/models"
)

func (h *Handler) createFinancialEntry(w http.ResponseWriter, r *http.Request) {
	var in models.FinancialEntryInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := h.services.FinanceService.Create(r.Context(), currentUser(r), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, entry, http.StatusOK)
}

// listFinancialEntries accepts society, start_date and end_date query values.
func (h *Handler) listFinancialEntries(w http.ResponseWriter, r *http.Request) {
	society, err := societyQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	startDate, err := timeQuery(r, "start_date")
	if err != nil {
		writeError(w, r, err)
		return
	}

	endDate, err := timeQuery(r, "end_date")
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := h.services.FinanceService.List(r.Context(), models.FinanceFilter{
		Society:   society,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, entries, http.StatusOK)
}
