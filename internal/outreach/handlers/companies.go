package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	e "github.com/gartstein/outreach/internal/outreach/errors"
	"github.com/gartstein/outreach/internal/outreach/models"
)

// companyRequest is the JSON body for creating or updating a company.
// Pointer fields distinguish "absent" from "set to empty" on updates.
type companyRequest struct {
	Name                     *string   `json:"name"`
	Location                 *string   `json:"location"`
	LinkedInProfile          *string   `json:"linkedInProfile"`
	Emails                   *[]string `json:"emails"`
	PhoneNumbers             *[]string `json:"phoneNumbers"`
	Comments                 *string   `json:"comments"`
	CommunicationPeriodicity *string   `json:"communicationPeriodicity"`
	NextCommunication        *string   `json:"nextCommunication"`
}

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.ListCompanies(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, companies)
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	company, err := h.service.GetCompany(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, company)
}

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: malformed body", e.ErrInvalidInput))
		return
	}

	company := &models.Company{}
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Location != nil {
		company.Location = *req.Location
	}
	if req.LinkedInProfile != nil {
		company.LinkedInProfile = *req.LinkedInProfile
	}
	if req.Emails != nil {
		company.Emails = *req.Emails
	}
	if req.PhoneNumbers != nil {
		company.PhoneNumbers = *req.PhoneNumbers
	}
	if req.Comments != nil {
		company.Comments = *req.Comments
	}
	if req.CommunicationPeriodicity != nil {
		company.CommunicationPeriodicity = *req.CommunicationPeriodicity
	}
	if req.NextCommunication != nil {
		company.NextCommunication = *req.NextCommunication
	}

	created, err := h.service.CreateCompany(r.Context(), company)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Company added successfully",
		"company": created,
	})
}

func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req companyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: malformed body", e.ErrInvalidInput))
		return
	}

	update := &models.CompanyUpdate{
		ID:                       id,
		Name:                     req.Name,
		Location:                 req.Location,
		LinkedInProfile:          req.LinkedInProfile,
		Emails:                   req.Emails,
		PhoneNumbers:             req.PhoneNumbers,
		Comments:                 req.Comments,
		CommunicationPeriodicity: req.CommunicationPeriodicity,
		NextCommunication:        req.NextCommunication,
	}

	updated, err := h.service.UpdateCompany(r.Context(), update)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Company updated successfully",
		"company": updated,
	})
}

func (h *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.service.DeleteCompany(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Company deleted successfully",
	})
}
