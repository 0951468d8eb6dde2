package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	e "github.com/gartstein/outreach/internal/outreach/errors"
	"github.com/gartstein/outreach/internal/outreach/models"
)

type methodRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Sequence    *int    `json:"sequence"`
	Mandatory   *bool   `json:"mandatory"`
}

func (h *Handler) ListMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.service.ListMethods(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, methods)
}

func (h *Handler) CreateMethod(w http.ResponseWriter, r *http.Request) {
	var req methodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: malformed body", e.ErrInvalidInput))
		return
	}

	method := &models.CommunicationMethod{}
	if req.Name != nil {
		method.Name = *req.Name
	}
	if req.Description != nil {
		method.Description = *req.Description
	}
	if req.Sequence != nil {
		method.Sequence = *req.Sequence
	}
	if req.Mandatory != nil {
		method.Mandatory = *req.Mandatory
	}

	created, err := h.service.CreateMethod(r.Context(), method)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Communication method added successfully",
		"method":  created,
	})
}

func (h *Handler) UpdateMethod(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req methodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: malformed body", e.ErrInvalidInput))
		return
	}

	update := &models.CommunicationMethodUpdate{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Sequence:    req.Sequence,
		Mandatory:   req.Mandatory,
	}

	updated, err := h.service.UpdateMethod(r.Context(), update)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Communication method updated successfully",
		"method":  updated,
	})
}

func (h *Handler) DeleteMethod(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.service.DeleteMethod(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Communication method deleted successfully",
	})
}
