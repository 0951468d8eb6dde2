package db

import (
	"context"
	"errors"

	e "github.com/gartstein/outreach/internal/outreach/errors"
	"github.com/gartstein/outreach/internal/outreach/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *Repository) CreateMethod(ctx context.Context, method *models.CommunicationMethod) error {
	result := r.db.WithContext(ctx).Create(method)
	return result.Error
}

func (r *Repository) GetMethod(ctx context.Context, id uuid.UUID) (*models.CommunicationMethod, error) {
	var method models.CommunicationMethod
	result := r.db.WithContext(ctx).First(&method, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &method, nil
}

// ListMethods returns all communication methods ordered by their
// admin-facing sequence.
func (r *Repository) ListMethods(ctx context.Context) ([]models.CommunicationMethod, error) {
	var methods []models.CommunicationMethod
	result := r.db.WithContext(ctx).Order("sequence").Find(&methods)
	if result.Error != nil {
		return nil, result.Error
	}
	return methods, nil
}

func (r *Repository) UpdateMethod(ctx context.Context, update *models.CommunicationMethodUpdate) error {
	values := map[string]interface{}{}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.Sequence != nil {
		values["sequence"] = *update.Sequence
	}
	if update.Mandatory != nil {
		values["mandatory"] = *update.Mandatory
	}
	if len(values) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&models.CommunicationMethod{}).
		Where("id = ?", update.ID).
		Updates(values)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteMethod(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CommunicationMethod{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}
