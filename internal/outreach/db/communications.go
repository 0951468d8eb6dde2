package db

import (
	"context"
	"errors"

	e "github.com/gartstein/outreach/internal/outreach/errors"
	"github.com/gartstein/outreach/internal/outreach/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *Repository) CreateCommunication(ctx context.Context, comm *models.Communication) error {
	result := r.db.WithContext(ctx).Create(comm)
	return result.Error
}

func (r *Repository) GetCommunication(ctx context.Context, id uuid.UUID) (*models.Communication, error) {
	var comm models.Communication
	result := r.db.WithContext(ctx).First(&comm, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &comm, nil
}

func (r *Repository) DeleteCommunication(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Communication{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// SetCompanyNextCommunication updates only the denormalized fallback
// next-contact date on a company.
func (r *Repository) SetCompanyNextCommunication(ctx context.Context, companyID uuid.UUID, date string) error {
	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ?", companyID).
		Update("next_communication", date)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}
