// Package db implements the GORM-backed repository for all outreach
// entities: companies, communication methods, the communication log and
// scheduled contacts.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	e "github.com/gartstein/outreach/internal/outreach/errors"
	"github.com/gartstein/outreach/internal/outreach/models"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewRepository(cfg *Config) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.CommunicationMethod{},
		&models.Communication{},
		&models.ScheduledContact{},
	)
}

func (r *Repository) CreateCompany(ctx context.Context, company *models.Company) error {
	result := r.db.WithContext(ctx).Create(company)
	return result.Error
}

func (r *Repository) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	result := r.db.WithContext(ctx).Preload("Communications").First(&company, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &company, nil
}

// ListCompanies returns all companies with their communication logs expanded.
func (r *Repository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	result := r.db.WithContext(ctx).Preload("Communications").Find(&companies)
	if result.Error != nil {
		return nil, result.Error
	}
	return companies, nil
}

func (r *Repository) UpdateCompany(ctx context.Context, update *models.CompanyUpdate) error {
	values := map[string]interface{}{}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Location != nil {
		values["location"] = *update.Location
	}
	if update.LinkedInProfile != nil {
		values["linked_in_profile"] = *update.LinkedInProfile
	}
	// Map-based Updates bypasses the json serializer on these columns, so
	// marshal the slice values here.
	if update.Emails != nil {
		data, err := json.Marshal(*update.Emails)
		if err != nil {
			return fmt.Errorf("failed to encode emails: %w", err)
		}
		values["emails"] = string(data)
	}
	if update.PhoneNumbers != nil {
		data, err := json.Marshal(*update.PhoneNumbers)
		if err != nil {
			return fmt.Errorf("failed to encode phone numbers: %w", err)
		}
		values["phone_numbers"] = string(data)
	}
	if update.Comments != nil {
		values["comments"] = *update.Comments
	}
	if update.CommunicationPeriodicity != nil {
		values["communication_periodicity"] = *update.CommunicationPeriodicity
	}
	if update.NextCommunication != nil {
		values["next_communication"] = *update.NextCommunication
	}
	if len(values) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&models.Company{}).
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

// DeleteCompany removes a company together with its communication log and
// any scheduled contact, in a single transaction.
func (r *Repository) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Company{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return e.ErrNotFound
		}
		if err := tx.Delete(&models.Communication{}, "company_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ScheduledContact{}, "company_id = ?", id).Error
	})
}

func (r *Repository) CompanyExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ?", id).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) Close() error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
