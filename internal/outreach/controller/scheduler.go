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

// ScheduleContact creates the company's active next-contact entry, or
// updates it in place when one already exists. Schedule and reschedule are
// the same operation; the caller does not need to know which case applies.
// The company must exist, otherwise an orphaned schedule would be created.
func (s *OutreachService) ScheduleContact(ctx context.Context, companyID uuid.UUID, communicationType, scheduledDate string) (*models.ScheduledContact, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("%w: company ID is required", e.ErrInvalidInput)
	}
	if communicationType == "" {
		return nil, fmt.Errorf("%w: communication type is required", e.ErrInvalidInput)
	}
	if scheduledDate == "" {
		return nil, fmt.Errorf("%w: scheduled date is required", e.ErrInvalidInput)
	}

	exists, err := s.repo.CompanyExists(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check company existence: %w", err)
	}
	if !exists {
		return nil, e.ErrNotFound
	}

	existing, err := s.repo.GetActiveScheduleForCompany(ctx, companyID)
	switch {
	case err == nil:
		// An active entry exists: update it in place to preserve the
		// at-most-one invariant.
		return s.RescheduleContact(ctx, existing.ID, communicationType, scheduledDate)
	case errors.Is(err, e.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to look up active schedule: %w", err)
	}

	schedule := &models.ScheduledContact{
		ID:                uuid.New(),
		CompanyID:         companyID,
		CommunicationType: communicationType,
		ScheduledDate:     scheduledDate,
		IsCompleted:       false,
	}
	if err := s.repo.CreateSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	go func() {
		s.producer.Produce(events.ContactScheduled, companyID, schedule)
	}()
	return schedule, nil
}

// RescheduleContact updates an existing entry's type and date in place.
// IsCompleted is force-reset to false regardless of its previous value.
func (s *OutreachService) RescheduleContact(ctx context.Context, id uuid.UUID, communicationType, scheduledDate string) (*models.ScheduledContact, error) {
	if communicationType == "" {
		return nil, fmt.Errorf("%w: communication type is required", e.ErrInvalidInput)
	}
	if scheduledDate == "" {
		return nil, fmt.Errorf("%w: scheduled date is required", e.ErrInvalidInput)
	}

	if err := s.repo.UpdateSchedule(ctx, id, communicationType, scheduledDate); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}

	updated, err := s.repo.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	go func() {
		s.producer.Produce(events.ContactRescheduled, updated.CompanyID, updated)
	}()
	return updated, nil
}

// CancelSchedule deletes one scheduled contact by ID.
func (s *OutreachService) CancelSchedule(ctx context.Context, id uuid.UUID) error {
	schedule, err := s.repo.GetSchedule(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get schedule for cancellation: %w", err)
	}

	if err := s.repo.DeleteSchedule(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	go func() {
		s.producer.Produce(events.ContactCancelled, schedule.CompanyID, schedule)
	}()
	return nil
}

// CancelForCompany cancels the company's active schedule if one exists.
// A company with no active schedule is a no-op, not an error.
func (s *OutreachService) CancelForCompany(ctx context.Context, companyID uuid.UUID) error {
	schedule, err := s.repo.GetActiveScheduleForCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up active schedule: %w", err)
	}
	return s.CancelSchedule(ctx, schedule.ID)
}

// ListActiveSchedules returns every incomplete scheduled contact. This is
// the authoritative input for notification derivation.
func (s *OutreachService) ListActiveSchedules(ctx context.Context) ([]models.ScheduledContact, error) {
	schedules, err := s.repo.ListActiveSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

// ListSchedulesForCompany returns the company's incomplete scheduled
// contacts (at most one under normal operation).
func (s *OutreachService) ListSchedulesForCompany(ctx context.Context, companyID uuid.UUID) ([]models.ScheduledContact, error) {
	schedules, err := s.repo.ListActiveSchedulesForCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules for company: %w", err)
	}
	return schedules, nil
}
