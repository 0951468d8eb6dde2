package handlers

import (
	"net/http"
)

// GetNotifications serves the derived overdue/due-today classification.
// The optional date query parameter (YYYY-MM-DD) overrides "today", which
// keeps the derivation testable and lets clients render other days.
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	classification, err := h.service.Notifications(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"overdue":  classification.Overdue,
		"dueToday": classification.DueToday,
		"count":    classification.Count(),
	})
}

// GetDashboard serves the per-company summary used by the user dashboard.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entries)
}
