package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	e "github.com/gartstein/outreach/internal/outreach/errors"
	"github.com/gartstein/outreach/internal/outreach/models"
	"github.com/gartstein/outreach/internal/outreach/notify"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OutreachController defines the business logic interface that the HTTP
// handlers invoke.
type OutreachController interface {
	CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	UpdateCompany(ctx context.Context, update *models.CompanyUpdate) (*models.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error

	CreateMethod(ctx context.Context, method *models.CommunicationMethod) (*models.CommunicationMethod, error)
	ListMethods(ctx context.Context) ([]models.CommunicationMethod, error)
	UpdateMethod(ctx context.Context, update *models.CommunicationMethodUpdate) (*models.CommunicationMethod, error)
	DeleteMethod(ctx context.Context, id uuid.UUID) error

	LogCommunication(ctx context.Context, comm *models.Communication) (*models.Company, error)
	GetCommunication(ctx context.Context, id uuid.UUID) (*models.Communication, error)
	RemoveCommunication(ctx context.Context, id uuid.UUID) error

	ScheduleContact(ctx context.Context, companyID uuid.UUID, communicationType, scheduledDate string) (*models.ScheduledContact, error)
	RescheduleContact(ctx context.Context, id uuid.UUID, communicationType, scheduledDate string) (*models.ScheduledContact, error)
	CancelSchedule(ctx context.Context, id uuid.UUID) error
	ListActiveSchedules(ctx context.Context) ([]models.ScheduledContact, error)
	ListSchedulesForCompany(ctx context.Context, companyID uuid.UUID) ([]models.ScheduledContact, error)

	Notifications(ctx context.Context, today string) (notify.Classification, error)
	Dashboard(ctx context.Context) ([]models.DashboardEntry, error)
}

// Handler maps REST requests to an OutreachController.
type Handler struct {
	service OutreachController
	logger  *zap.Logger
}

// NewHandler constructs a Handler with the given service and logger.
func NewHandler(service OutreachController, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("http_handler"),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// writeError maps domain errors onto HTTP status codes: invalid input to
// 400, not found to 404, anything else to 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"message": err.Error()})
	default:
		h.logger.Error("Request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
}

func (h *Handler) idParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, e.ErrNotFound
	}
	return id, nil
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
