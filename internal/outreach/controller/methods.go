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

// CreateMethod registers a new communication method. Method names are not
// referentially enforced against log entries; uniqueness is by convention.
func (s *OutreachService) CreateMethod(ctx context.Context, method *models.CommunicationMethod) (*models.CommunicationMethod, error) {
	if method.Name == "" {
		return nil, fmt.Errorf("%w: name is required", e.ErrInvalidInput)
	}

	method.ID = uuid.New()
	if err := s.repo.CreateMethod(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to create communication method: %w", err)
	}
	go func() {
		s.producer.Produce(events.MethodCreated, uuid.Nil, method)
	}()
	return method, nil
}

// ListMethods returns all communication methods in sequence order.
func (s *OutreachService) ListMethods(ctx context.Context) ([]models.CommunicationMethod, error) {
	methods, err := s.repo.ListMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list communication methods: %w", err)
	}
	return methods, nil
}

// UpdateMethod modifies the specified method fields and returns the updated
// version.
func (s *OutreachService) UpdateMethod(ctx context.Context, update *models.CommunicationMethodUpdate) (*models.CommunicationMethod, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid method ID", e.ErrInvalidInput)
	}
	if update.Name != nil && *update.Name == "" {
		return nil, fmt.Errorf("%w: name is required", e.ErrInvalidInput)
	}

	if err := s.repo.UpdateMethod(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update communication method: %w", err)
	}

	updated, err := s.repo.GetMethod(ctx, update.ID)
	if err != nil {
		return nil, err
	}
	go func() {
		s.producer.Produce(events.MethodUpdated, uuid.Nil, updated)
	}()
	return updated, nil
}

// DeleteMethod removes a communication method. Existing log entries keep
// their type string; nothing cascades.
func (s *OutreachService) DeleteMethod(ctx context.Context, id uuid.UUID) error {
	method, err := s.repo.GetMethod(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get communication method for deletion: %w", err)
	}

	if err := s.repo.DeleteMethod(ctx, id); err != nil {
		return fmt.Errorf("failed to delete communication method: %w", err)
	}
	go func() {
		s.producer.Produce(events.MethodDeleted, uuid.Nil, method)
	}()
	return nil
}
