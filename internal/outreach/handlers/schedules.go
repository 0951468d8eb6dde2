package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	e "github.com/gartstein/outreach/internal/outreach/errors"
	"github.com/google/uuid"
)

type scheduleRequest struct {
	CompanyID         string `json:"companyId"`
	CommunicationType string `json:"communicationType"`
	ScheduledDate     string `json:"scheduledDate"`
}

// CreateSchedule schedules the company's next contact. When an active entry
// already exists it is updated in place; the caller does not need to know
// which case applied.
func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: malformed body", e.ErrInvalidInput))
		return
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: invalid company ID", e.ErrInvalidInput))
		return
	}

	schedule, err := h.service.ScheduleContact(r.Context(), companyID, req.CommunicationType, req.ScheduledDate)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, schedule)
}

func (h *Handler) ListActiveSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.service.ListActiveSchedules(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, schedules)
}

func (h *Handler) ListCompanySchedules(w http.ResponseWriter, r *http.Request) {
	companyID, err := h.idParam(r, "companyID")
	if err != nil {
		h.writeError(w, err)
		return
	}

	schedules, err := h.service.ListSchedulesForCompany(r.Context(), companyID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, schedules)
}

// RescheduleContact updates an entry's type and date; IsCompleted comes
// back forced to false.
func (h *Handler) RescheduleContact(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: malformed body", e.ErrInvalidInput))
		return
	}

	schedule, err := h.service.RescheduleContact(r.Context(), id, req.CommunicationType, req.ScheduledDate)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, schedule)
}

func (h *Handler) CancelSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.service.CancelSchedule(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Schedule cancelled successfully",
	})
}
