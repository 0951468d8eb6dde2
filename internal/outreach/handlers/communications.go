package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	e "github.com/gartstein/outreach/internal/outreach/errors"
	"github.com/gartstein/outreach/internal/outreach/models"
	"github.com/gartstein/outreach/internal/outreach/notify"
	"github.com/google/uuid"
)

type logCommunicationRequest struct {
	CompanyID         string `json:"companyId"`
	CommunicationType string `json:"communicationType"`
	CommunicationDate string `json:"communicationDate"`
	Notes             string `json:"notes"`
	NextCommunication string `json:"nextCommunication"`
}

// LogCommunication records a past outreach event. Future-dated entries are
// rejected here at the edge: future events belong in the scheduler, not the
// log.
func (h *Handler) LogCommunication(w http.ResponseWriter, r *http.Request) {
	var req logCommunicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: malformed body", e.ErrInvalidInput))
		return
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: invalid company ID", e.ErrInvalidInput))
		return
	}

	if day, ok := notify.Day(req.CommunicationDate); ok && day > notify.Today() {
		h.writeError(w, fmt.Errorf("%w: communication date is in the future", e.ErrInvalidInput))
		return
	}

	comm := &models.Communication{
		CompanyID:         companyID,
		CommunicationType: req.CommunicationType,
		CommunicationDate: req.CommunicationDate,
		Notes:             req.Notes,
		NextCommunication: req.NextCommunication,
	}

	company, err := h.service.LogCommunication(r.Context(), comm)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":        "Communication logged successfully",
		"updatedCompany": company,
	})
}

func (h *Handler) GetCommunication(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	comm, err := h.service.GetCommunication(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, comm)
}

func (h *Handler) DeleteCommunication(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.service.RemoveCommunication(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Communication deleted successfully",
	})
}
