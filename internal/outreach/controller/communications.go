package controller

import (
	"context"
	"errors"
	"fmt"

	e "github.com/gartstein/outreach/internal/outreach/errors"
	"github.com/gartstein/outreach/internal/outreach/events"
	"github.com/gartstein/outreach/internal/outreach/models"
	"github.com/google/uuid"
)

// LogCommunication appends a past outreach event to the company's log and,
// when a next-contact date was supplied alongside it, seeds the company's
// denormalized NextCommunication field in the same call. The scheduler is
// never touched here: an active ScheduledContact remains authoritative and
// the denormalized field stays a dormant fallback until the schedule is
// cancelled. Returns the updated company with its log expanded.
func (s *OutreachService) LogCommunication(ctx context.Context, comm *models.Communication) (*models.Company, error) {
	if comm.CompanyID == uuid.Nil {
		return nil, fmt.Errorf("%w: company ID is required", e.ErrInvalidInput)
	}
	if comm.CommunicationType == "" {
		return nil, fmt.Errorf("%w: communication type is required", e.ErrInvalidInput)
	}
	if comm.CommunicationDate == "" {
		return nil, fmt.Errorf("%w: communication date is required", e.ErrInvalidInput)
	}

	exists, err := s.repo.CompanyExists(ctx, comm.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check company existence: %w", err)
	}
	if !exists {
		return nil, e.ErrNotFound
	}

	comm.ID = uuid.New()
	if err := s.repo.CreateCommunication(ctx, comm); err != nil {
		return nil, fmt.Errorf("failed to log communication: %w", err)
	}

	if comm.NextCommunication != "" {
		if err := s.repo.SetCompanyNextCommunication(ctx, comm.CompanyID, comm.NextCommunication); err != nil {
			return nil, fmt.Errorf("failed to set next communication date: %w", err)
		}
	}

	company, err := s.repo.GetCompany(ctx, comm.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company after logging: %w", err)
	}
	go func() {
		s.producer.Produce(events.CommunicationLogged, comm.CompanyID, comm)
	}()
	return company, nil
}

// GetCommunication fetches a single log entry by ID.
func (s *OutreachService) GetCommunication(ctx context.Context, id uuid.UUID) (*models.Communication, error) {
	comm, err := s.repo.GetCommunication(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get communication: %w", err)
	}
	return comm, nil
}

// RemoveCommunication deletes one log entry by ID. The scheduler and the
// company's denormalized next-contact field are left untouched.
func (s *OutreachService) RemoveCommunication(ctx context.Context, id uuid.UUID) error {
	comm, err := s.repo.GetCommunication(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get communication for deletion: %w", err)
	}

	if err := s.repo.DeleteCommunication(ctx, id); err != nil {
		return fmt.Errorf("failed to delete communication: %w", err)
	}
	go func() {
		s.producer.Produce(events.CommunicationRemoved, comm.CompanyID, comm)
	}()
	return nil
}
