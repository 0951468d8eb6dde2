// Reminder worker: consumes outreach events and surfaces the ones a
// follow-up integration cares about (scheduled, rescheduled and cancelled
// contacts). Downstream delivery (email, Slack) hangs off the handler.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gartstein/outreach/internal/outreach/events"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	KafkaBrokers []string `yaml:"KAFKA_BROKERS"`
	Topic        string   `yaml:"TOPIC"`
}

func main() {
	logger, _ := zap.NewProduction()
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	consumer := events.NewConsumer(cfg.KafkaBrokers, "reminder-service", cfg.Topic, logger)
	defer consumer.Close()

	consumer.RegisterHandler(func(_ context.Context, event events.Event) error {
		switch event.Type {
		case events.ContactScheduled, events.ContactRescheduled, events.ContactCancelled:
			logger.Info("schedule change",
				zap.String("event_type", string(event.Type)),
				zap.String("company_id", event.CompanyID.String()),
			)
		case events.CommunicationLogged:
			logger.Info("communication logged",
				zap.String("company_id", event.CompanyID.String()),
			)
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	consumer.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("reminder worker stopped")
}

func loadConfig() (*Config, error) {
	configPath := filepath.Join("internal", "outreach", "config", "config.yaml")
	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
