package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gartstein/outreach/internal/outreach/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// MockKafkaWriter implements KafkaWriter for testing
type MockKafkaWriter struct {
	mock.Mock
}

func (m *MockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockKafkaWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newTestProducer(logger *zap.Logger) *Producer {
	return &Producer{
		writer:    new(MockKafkaWriter),
		events:    make(chan Event, 1000),
		logger:    logger.Named("kafka_producer"),
		closeChan: make(chan struct{}),
	}
}

func TestProducer_Produce(t *testing.T) {
	t.Run("successful produce", func(t *testing.T) {
		producer := newTestProducer(zaptest.NewLogger(t))
		company := &models.Company{ID: uuid.New()}

		producer.Produce(CompanyCreated, company.ID, company)

		assert.Equal(t, 1, len(producer.events))
	})

	t.Run("dropped event when queue full", func(t *testing.T) {
		core, recorded := observer.New(zap.WarnLevel)
		producer := newTestProducer(zap.New(core))
		producer.events = make(chan Event, 1) // Small buffer for test
		company := &models.Company{ID: uuid.New()}

		// Fill the channel
		producer.Produce(CompanyCreated, company.ID, company)
		producer.Produce(CompanyCreated, company.ID, company) // This should be dropped

		// Check logs
		assert.Equal(t, 1, recorded.FilterMessage("Kafka producer queue full, dropping event").Len())
	})
}

func TestProducer_SendEvent(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	logger := zaptest.NewLogger(t)
	company := &models.Company{ID: uuid.New(), Name: "Test Company"}

	producer := &Producer{
		writer: mockWriter,
		logger: logger,
	}

	t.Run("successful send", func(t *testing.T) {
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)

		event := Event{Type: CompanyCreated, CompanyID: company.ID, Payload: company}
		producer.sendEvent(context.Background(), event)

		mockWriter.AssertCalled(t, "WriteMessages", mock.Anything, []kafka.Message{
			{
				Key:   []byte(company.ID.String()),
				Value: mustMarshal(event),
			},
		})
	})

	t.Run("serialization error", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		producer.logger = zap.New(core)

		// Mock JSON marshaling to force error
		oldMarshal := jsonMarshal
		jsonMarshal = func(_ interface{}) ([]byte, error) {
			return nil, errors.New("mock marshal error")
		}
		defer func() { jsonMarshal = oldMarshal }()

		event := Event{Type: CompanyCreated, CompanyID: company.ID, Payload: company}
		producer.sendEvent(context.Background(), event)

		// Verify error logging
		assert.Equal(t, 1, recorded.FilterMessage("Failed to serialize event").Len())
		assert.Equal(t, 1, recorded.FilterField(zap.String("company_id", company.ID.String())).Len())
	})

	t.Run("write error", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		producer.logger = zap.New(core)
		mockWriter.ExpectedCalls = nil
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("kafka error"))

		event := Event{Type: CompanyCreated, CompanyID: company.ID, Payload: company}
		producer.sendEvent(context.Background(), event)

		assert.Equal(t, 1, recorded.FilterMessage("Failed to produce event").Len())
	})
}

func TestProducer_Close(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	mockWriter.On("Close").Return(nil)

	producer := &Producer{
		writer:    mockWriter,
		closeChan: make(chan struct{}),
		logger:    zaptest.NewLogger(t),
	}

	producer.Close()

	// Verify close channel is closed
	select {
	case <-producer.closeChan:
	default:
		t.Error("closeChan not closed")
	}

	mockWriter.AssertCalled(t, "Close")
}

func TestProducer_EventLoop(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)

	producer := &Producer{
		writer: mockWriter,
		events: make(chan Event, 1),
		logger: zaptest.NewLogger(t),
	}

	event := Event{Type: ContactScheduled, CompanyID: uuid.New()}

	// Start event loop
	go producer.eventLoop()

	// Send event
	producer.events <- event

	// Give time for processing
	time.Sleep(100 * time.Millisecond)

	mockWriter.AssertCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func mustMarshal(e Event) []byte {
	data, _ := json.Marshal(e)
	return data
}
