package controller

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gartstein/outreach/internal/outreach/db"
	e "github.com/gartstein/outreach/internal/outreach/errors"
	"github.com/gartstein/outreach/internal/outreach/events"
	"github.com/gartstein/outreach/internal/outreach/models"
	"github.com/gartstein/outreach/internal/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"
)

// MockRepository implements the Repository interface for testing
type MockRepository struct {
	createCompany func(context.Context, *models.Company) error
	getCompany    func(context.Context, uuid.UUID) (*models.Company, error)
	listCompanies func(context.Context) ([]models.Company, error)
	updateCompany func(context.Context, *models.CompanyUpdate) error
	deleteCompany func(context.Context, uuid.UUID) error
	companyExists func(context.Context, uuid.UUID) (bool, error)

	createMethod func(context.Context, *models.CommunicationMethod) error
	getMethod    func(context.Context, uuid.UUID) (*models.CommunicationMethod, error)
	listMethods  func(context.Context) ([]models.CommunicationMethod, error)
	updateMethod func(context.Context, *models.CommunicationMethodUpdate) error
	deleteMethod func(context.Context, uuid.UUID) error

	createCommunication         func(context.Context, *models.Communication) error
	getCommunication            func(context.Context, uuid.UUID) (*models.Communication, error)
	deleteCommunication         func(context.Context, uuid.UUID) error
	setCompanyNextCommunication func(context.Context, uuid.UUID, string) error

	createSchedule                func(context.Context, *models.ScheduledContact) error
	getSchedule                   func(context.Context, uuid.UUID) (*models.ScheduledContact, error)
	getActiveScheduleForCompany   func(context.Context, uuid.UUID) (*models.ScheduledContact, error)
	listActiveSchedules           func(context.Context) ([]models.ScheduledContact, error)
	listActiveSchedulesForCompany func(context.Context, uuid.UUID) ([]models.ScheduledContact, error)
	updateSchedule                func(context.Context, uuid.UUID, string, string) error
	deleteSchedule                func(context.Context, uuid.UUID) error

	withTransaction func(context.Context, func(*db.Repository) error) error
}

func (m *MockRepository) CreateCompany(ctx context.Context, c *models.Company) error {
	return m.createCompany(ctx, c)
}

func (m *MockRepository) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return m.getCompany(ctx, id)
}

func (m *MockRepository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return m.listCompanies(ctx)
}

func (m *MockRepository) UpdateCompany(ctx context.Context, u *models.CompanyUpdate) error {
	return m.updateCompany(ctx, u)
}

func (m *MockRepository) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return m.deleteCompany(ctx, id)
}

func (m *MockRepository) CompanyExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.companyExists(ctx, id)
}

func (m *MockRepository) CreateMethod(ctx context.Context, method *models.CommunicationMethod) error {
	return m.createMethod(ctx, method)
}

func (m *MockRepository) GetMethod(ctx context.Context, id uuid.UUID) (*models.CommunicationMethod, error) {
	return m.getMethod(ctx, id)
}

func (m *MockRepository) ListMethods(ctx context.Context) ([]models.CommunicationMethod, error) {
	return m.listMethods(ctx)
}

func (m *MockRepository) UpdateMethod(ctx context.Context, u *models.CommunicationMethodUpdate) error {
	return m.updateMethod(ctx, u)
}

func (m *MockRepository) DeleteMethod(ctx context.Context, id uuid.UUID) error {
	return m.deleteMethod(ctx, id)
}

func (m *MockRepository) CreateCommunication(ctx context.Context, c *models.Communication) error {
	return m.createCommunication(ctx, c)
}

func (m *MockRepository) GetCommunication(ctx context.Context, id uuid.UUID) (*models.Communication, error) {
	return m.getCommunication(ctx, id)
}

func (m *MockRepository) DeleteCommunication(ctx context.Context, id uuid.UUID) error {
	return m.deleteCommunication(ctx, id)
}

func (m *MockRepository) SetCompanyNextCommunication(ctx context.Context, id uuid.UUID, date string) error {
	return m.setCompanyNextCommunication(ctx, id, date)
}

func (m *MockRepository) CreateSchedule(ctx context.Context, s *models.ScheduledContact) error {
	return m.createSchedule(ctx, s)
}

func (m *MockRepository) GetSchedule(ctx context.Context, id uuid.UUID) (*models.ScheduledContact, error) {
	return m.getSchedule(ctx, id)
}

func (m *MockRepository) GetActiveScheduleForCompany(ctx context.Context, id uuid.UUID) (*models.ScheduledContact, error) {
	return m.getActiveScheduleForCompany(ctx, id)
}

func (m *MockRepository) ListActiveSchedules(ctx context.Context) ([]models.ScheduledContact, error) {
	return m.listActiveSchedules(ctx)
}

func (m *MockRepository) ListActiveSchedulesForCompany(ctx context.Context, id uuid.UUID) ([]models.ScheduledContact, error) {
	return m.listActiveSchedulesForCompany(ctx, id)
}

func (m *MockRepository) UpdateSchedule(ctx context.Context, id uuid.UUID, communicationType, scheduledDate string) error {
	return m.updateSchedule(ctx, id, communicationType, scheduledDate)
}

func (m *MockRepository) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	return m.deleteSchedule(ctx, id)
}

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(*db.Repository) error) error {
	return m.withTransaction(ctx, fn)
}

func (m *MockRepository) Close() error {
	return nil
}

// MockProducer is a test double for the Kafka producer.
type MockProducer struct {
	producedEvents []events.Event
	wg             *sync.WaitGroup
}

// Produce records the event and signals the wait group.
func (m *MockProducer) Produce(eventType events.EventType, companyID uuid.UUID, payload interface{}) {
	m.producedEvents = append(m.producedEvents, events.Event{
		Type:      eventType,
		CompanyID: companyID,
		Payload:   payload,
	})
	if m.wg != nil {
		m.wg.Done()
	}
}

func TestOutreachService_CreateCompany(t *testing.T) {
	testID := uuid.New()

	tests := []struct {
		name          string
		input         *models.Company
		mockSetup     func(*MockRepository, *MockProducer)
		expectError   bool
		expectedError error
	}{
		{
			name: "successful creation",
			input: &models.Company{
				Name:     "Acme Corp",
				Location: "Berlin",
				Emails:   []string{"sales@acme.test"},
			},
			mockSetup: func(mr *MockRepository, _ *MockProducer) {
				mr.createCompany = func(_ context.Context, c *models.Company) error {
					c.ID = testID
					return nil
				}
			},
			expectError: false,
		},
		{
			name: "missing name",
			input: &models.Company{
				Location: "Berlin",
			},
			mockSetup:     func(_ *MockRepository, _ *MockProducer) {},
			expectError:   true,
			expectedError: e.ErrInvalidInput,
		},
		{
			name: "missing location",
			input: &models.Company{
				Name: "Acme Corp",
			},
			mockSetup:     func(_ *MockRepository, _ *MockProducer) {},
			expectError:   true,
			expectedError: e.ErrInvalidInput,
		},
		{
			name: "repository error",
			input: &models.Company{
				Name:     "Acme Corp",
				Location: "Berlin",
			},
			mockSetup: func(mr *MockRepository, _ *MockProducer) {
				mr.createCompany = func(_ context.Context, _ *models.Company) error {
					return errors.New("database error")
				}
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zaptest.NewLogger(t)
			mockRepo := &MockRepository{}
			mockProducer := &MockProducer{wg: new(sync.WaitGroup)}
			tt.mockSetup(mockRepo, mockProducer)
			service := NewOutreachService(mockRepo, mockProducer, logger)

			// For successful creation, add one waitgroup counter for the async event.
			if !tt.expectError {
				mockProducer.wg.Add(1)
			}

			result, err := service.CreateCompany(context.Background(), tt.input)

			// Wait for the event production to complete.
			if !tt.expectError {
				mockProducer.wg.Wait()
			}

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if tt.expectedError != nil && !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if result.ID == uuid.Nil {
					t.Error("expected company ID to be set")
				}
				if len(mockProducer.producedEvents) != 1 {
					t.Error("expected creation event to be produced")
				}
			}
		})
	}
}

func TestOutreachService_GetCompany(t *testing.T) {
	testID := uuid.New()
	validCompany := &models.Company{
		ID:       testID,
		Name:     "Existing Company",
		Location: "Oslo",
	}

	tests := []struct {
		name          string
		input         uuid.UUID
		mockSetup     func(*MockRepository)
		expectError   bool
		expectedError error
	}{
		{
			name:  "successful get",
			input: testID,
			mockSetup: func(mr *MockRepository) {
				mr.getCompany = func(_ context.Context, _ uuid.UUID) (*models.Company, error) {
					return validCompany, nil
				}
			},
			expectError: false,
		},
		{
			name:  "not found",
			input: uuid.New(),
			mockSetup: func(mr *MockRepository) {
				mr.getCompany = func(_ context.Context, _ uuid.UUID) (*models.Company, error) {
					return nil, e.ErrNotFound
				}
			},
			expectError:   true,
			expectedError: e.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zaptest.NewLogger(t)
			mockRepo := &MockRepository{}
			tt.mockSetup(mockRepo)

			service := NewOutreachService(mockRepo, &MockProducer{}, logger)
			result, err := service.GetCompany(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if result.ID != tt.input {
					t.Errorf("expected company ID %v, got %v", tt.input, result.ID)
				}
			}
		})
	}
}

func TestOutreachService_UpdateCompany(t *testing.T) {
	testID := uuid.New()
	validUpdate := &models.CompanyUpdate{
		ID:       testID,
		Name:     utils.Ptr("Updated Name"),
		Location: utils.Ptr("Updated Location"),
		Comments: utils.Ptr("Updated Comments"),
	}

	tests := []struct {
		name          string
		input         *models.CompanyUpdate
		mockSetup     func(*MockRepository, *MockProducer)
		expectError   bool
		expectedError error
	}{
		{
			name:  "successful update",
			input: validUpdate,
			mockSetup: func(mr *MockRepository, _ *MockProducer) {
				mr.updateCompany = func(_ context.Context, _ *models.CompanyUpdate) error {
					return nil
				}
				mr.getCompany = func(_ context.Context, _ uuid.UUID) (*models.Company, error) {
					return &models.Company{ID: testID}, nil
				}
			},
			expectError: false,
		},
		{
			name: "invalid ID",
			input: &models.CompanyUpdate{
				ID: uuid.Nil,
			},
			mockSetup:     func(_ *MockRepository, _ *MockProducer) {},
			expectError:   true,
			expectedError: e.ErrInvalidInput,
		},
		{
			name: "empty name rejected",
			input: &models.CompanyUpdate{
				ID:   testID,
				Name: utils.Ptr(""),
			},
			mockSetup:     func(_ *MockRepository, _ *MockProducer) {},
			expectError:   true,
			expectedError: e.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zaptest.NewLogger(t)
			mockRepo := &MockRepository{}
			mockProducer := &MockProducer{wg: new(sync.WaitGroup)}
			tt.mockSetup(mockRepo, mockProducer)

			service := NewOutreachService(mockRepo, mockProducer, logger)

			if !tt.expectError {
				mockProducer.wg.Add(1)
			}

			_, err := service.UpdateCompany(context.Background(), tt.input)

			if !tt.expectError {
				mockProducer.wg.Wait()
			}

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(mockProducer.producedEvents) != 1 {
					t.Error("expected update event to be produced")
				}
			}
		})
	}
}

func TestOutreachService_DeleteCompany(t *testing.T) {
	testID := uuid.New()

	tests := []struct {
		name          string
		input         uuid.UUID
		mockSetup     func(*MockRepository, *MockProducer)
		expectError   bool
		expectedError error
	}{
		{
			name:  "successful deletion",
			input: testID,
			mockSetup: func(mr *MockRepository, _ *MockProducer) {
				mr.getCompany = func(_ context.Context, _ uuid.UUID) (*models.Company, error) {
					return &models.Company{ID: testID}, nil
				}
				mr.deleteCompany = func(_ context.Context, _ uuid.UUID) error {
					return nil
				}
			},
			expectError: false,
		},
		{
			name:  "not found",
			input: testID,
			mockSetup: func(mr *MockRepository, _ *MockProducer) {
				mr.getCompany = func(_ context.Context, _ uuid.UUID) (*models.Company, error) {
					return nil, e.ErrNotFound
				}
			},
			expectError:   true,
			expectedError: e.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zaptest.NewLogger(t)
			mockRepo := &MockRepository{}
			mockProducer := &MockProducer{wg: new(sync.WaitGroup)}
			tt.mockSetup(mockRepo, mockProducer)

			service := NewOutreachService(mockRepo, mockProducer, logger)

			if !tt.expectError {
				mockProducer.wg.Add(1)
			}

			err := service.DeleteCompany(context.Background(), tt.input)

			if !tt.expectError {
				mockProducer.wg.Wait()
			}

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(mockProducer.producedEvents) != 1 {
					t.Error("expected deletion event to be produced")
				}
			}
		})
	}
}
