// Package controller implements the core business logic (service layer)
// for the outreach tracker: company lifecycle, the communication-method
// registry, the communication log, the next-contact scheduler and the
// notification derivation, orchestrating repository operations and sending
// relevant events.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/gartstein/outreach/internal/outreach/db"
	e "github.com/gartstein/outreach/internal/outreach/errors"
	"github.com/gartstein/outreach/internal/outreach/events"
	"github.com/gartstein/outreach/internal/outreach/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventProducer interface {
	Produce(eventType events.EventType, companyID uuid.UUID, payload interface{})
}

// Repository defines the storage interface for outreach entities.
type Repository interface {
	CreateCompany(ctx context.Context, company *models.Company) error
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	UpdateCompany(ctx context.Context, update *models.CompanyUpdate) error
	DeleteCompany(ctx context.Context, id uuid.UUID) error
	CompanyExists(ctx context.Context, id uuid.UUID) (bool, error)

	CreateMethod(ctx context.Context, method *models.CommunicationMethod) error
	GetMethod(ctx context.Context, id uuid.UUID) (*models.CommunicationMethod, error)
	ListMethods(ctx context.Context) ([]models.CommunicationMethod, error)
	UpdateMethod(ctx context.Context, update *models.CommunicationMethodUpdate) error
	DeleteMethod(ctx context.Context, id uuid.UUID) error

	CreateCommunication(ctx context.Context, comm *models.Communication) error
	GetCommunication(ctx context.Context, id uuid.UUID) (*models.Communication, error)
	DeleteCommunication(ctx context.Context, id uuid.UUID) error
	SetCompanyNextCommunication(ctx context.Context, companyID uuid.UUID, date string) error

	CreateSchedule(ctx context.Context, schedule *models.ScheduledContact) error
	GetSchedule(ctx context.Context, id uuid.UUID) (*models.ScheduledContact, error)
	GetActiveScheduleForCompany(ctx context.Context, companyID uuid.UUID) (*models.ScheduledContact, error)
	ListActiveSchedules(ctx context.Context) ([]models.ScheduledContact, error)
	ListActiveSchedulesForCompany(ctx context.Context, companyID uuid.UUID) ([]models.ScheduledContact, error)
	UpdateSchedule(ctx context.Context, id uuid.UUID, communicationType, scheduledDate string) error
	DeleteSchedule(ctx context.Context, id uuid.UUID) error

	WithTransaction(ctx context.Context, fn func(repo *db.Repository) error) error
	Close() error
}

// OutreachService provides methods to manage companies, methods, the
// communication log and scheduled contacts via repository operations and
// event production.
type OutreachService struct {
	repo     Repository
	producer EventProducer
	logger   *zap.Logger
}

// NewOutreachService constructs an OutreachService with a repository,
// an event producer, and a logger.
func NewOutreachService(repo Repository, producer EventProducer, logger *zap.Logger) *OutreachService {
	return &OutreachService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("outreach_service"),
	}
}

// CreateCompany adds a new Company after validating input data and
// triggers a creation event.
func (s *OutreachService) CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	if company.Name == "" {
		return nil, fmt.Errorf("%w: name is required", e.ErrInvalidInput)
	}
	if company.Location == "" {
		return nil, fmt.Errorf("%w: location is required", e.ErrInvalidInput)
	}

	company.ID = uuid.New()
	if err := s.repo.CreateCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	go func() {
		s.producer.Produce(events.CompanyCreated, company.ID, company)
	}()
	return company, nil
}

// GetCompany retrieves a Company by ID with its communication log expanded,
// returning an error if not found.
func (s *OutreachService) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// ListCompanies returns all companies with communications expanded.
func (s *OutreachService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies, err := s.repo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// UpdateCompany modifies the specified Company fields, then fetches the
// updated version for returning and event production.
func (s *OutreachService) UpdateCompany(ctx context.Context, update *models.CompanyUpdate) (*models.Company, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid company ID", e.ErrInvalidInput)
	}
	if update.Name != nil && *update.Name == "" {
		return nil, fmt.Errorf("%w: name is required", e.ErrInvalidInput)
	}
	if update.Location != nil && *update.Location == "" {
		return nil, fmt.Errorf("%w: location is required", e.ErrInvalidInput)
	}

	err := s.repo.UpdateCompany(ctx, update)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	updated, err := s.repo.GetCompany(ctx, update.ID)
	if err != nil {
		s.logger.Error("Failed to get company for event",
			zap.Error(err),
			zap.String("company_id", update.ID.String()),
		)
		return nil, err
	}
	go func() {
		s.producer.Produce(events.CompanyUpdated, updated.ID, updated)
	}()
	return updated, nil
}

// DeleteCompany removes a Company by ID together with its communication log
// and scheduled contact, and fires a deletion event.
func (s *OutreachService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	company, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get company for deletion: %w", err)
	}

	if err := s.repo.DeleteCompany(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	go func() {
		s.producer.Produce(events.CompanyDeleted, company.ID, company)
	}()

	return nil
}
