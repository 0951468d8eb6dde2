package db

import (
	"context"
	"errors"

	e "github.com/gartstein/outreach/internal/outreach/errors"
	"github.com/gartstein/outreach/internal/outreach/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *Repository) CreateSchedule(ctx context.Context, schedule *models.ScheduledContact) error {
	result := r.db.WithContext(ctx).Create(schedule)
	return result.Error
}

func (r *Repository) GetSchedule(ctx context.Context, id uuid.UUID) (*models.ScheduledContact, error) {
	var schedule models.ScheduledContact
	result := r.db.WithContext(ctx).First(&schedule, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &schedule, nil
}

// GetActiveScheduleForCompany returns the company's active entry, or
// ErrNotFound when it has none.
func (r *Repository) GetActiveScheduleForCompany(ctx context.Context, companyID uuid.UUID) (*models.ScheduledContact, error) {
	var schedule models.ScheduledContact
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND is_completed = ?", companyID, false).
		First(&schedule)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &schedule, nil
}

// ListActiveSchedules returns every entry with is_completed = false.
func (r *Repository) ListActiveSchedules(ctx context.Context) ([]models.ScheduledContact, error) {
	var schedules []models.ScheduledContact
	result := r.db.WithContext(ctx).Where("is_completed = ?", false).Find(&schedules)
	if result.Error != nil {
		return nil, result.Error
	}
	return schedules, nil
}

func (r *Repository) ListActiveSchedulesForCompany(ctx context.Context, companyID uuid.UUID) ([]models.ScheduledContact, error) {
	var schedules []models.ScheduledContact
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND is_completed = ?", companyID, false).
		Find(&schedules)
	if result.Error != nil {
		return nil, result.Error
	}
	return schedules, nil
}

// UpdateSchedule replaces the entry's type and date in place and force-resets
// is_completed to false.
func (r *Repository) UpdateSchedule(ctx context.Context, id uuid.UUID, communicationType, scheduledDate string) error {
	result := r.db.WithContext(ctx).Model(&models.ScheduledContact{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"communication_type": communicationType,
			"scheduled_date":     scheduledDate,
			"is_completed":       false,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ScheduledContact{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}
