package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/cenkalti/backoff/v4"
	"github.com/gartstein/outreach/internal/outreach/controller"
	gorm "github.com/gartstein/outreach/internal/outreach/db"
	"github.com/gartstein/outreach/internal/outreach/events"
	"github.com/gartstein/outreach/internal/outreach/handlers"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config struct for YAML configuration
type Config struct {
	HTTPPort       int      `yaml:"HTTP_PORT"`
	DBHost         string   `yaml:"DB_HOST"`
	DBPort         int      `yaml:"DB_PORT"`
	DBUser         string   `yaml:"DB_USER"`
	DBPassword     string   `yaml:"DB_PASSWORD"`
	DBName         string   `yaml:"DB_NAME"`
	DBSSLMode      string   `yaml:"DB_SSLMODE"`
	KafkaBrokers   []string `yaml:"KAFKA_BROKERS"`
	JWTSecret      string   `yaml:"JWT_SECRET"`
	Topic          string   `yaml:"TOPIC"`
	AllowedOrigins []string `yaml:"ALLOWED_ORIGINS"`
}

func main() {
	logger := initLogger()
	defer func(logger *zap.Logger) {
		err := logger.Sync()
		if err != nil {
			logger.Error("failed to sync logger", zap.Error(err))
		}
	}(logger)

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	repo, err := connectDatabase(cfg, logger)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close repository", zap.Error(err))
		}
	}()

	producer, err := events.NewProducer(cfg.KafkaBrokers, logger, cfg.Topic)
	if err != nil {
		log.Fatal("failed to initialize Kafka producer", err)
	}
	defer producer.Close()

	outreachSvc := controller.NewOutreachService(repo, producer, logger)

	// Create handlers
	handler := handlers.NewHandler(outreachSvc, logger)

	// Create server
	server := handlers.NewServer(cfg.HTTPPort, logger)
	server.RegisterRoutes(handler, cfg.JWTSecret, cfg.AllowedOrigins)

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	waitForShutdown(server, logger)
}

// initLogger initializes a Zap production logger.
func initLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}

// loadConfig loads configuration. Use real config tooling (e.g. Viper) in production.
func loadConfig() (*Config, error) {
	configPath := filepath.Join("internal", "outreach", "config", "config.yaml")
	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	err = yaml.Unmarshal(file, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// connectDatabase opens the repository, retrying with exponential backoff
// so the service survives the database coming up after it.
func connectDatabase(cfg *Config, logger *zap.Logger) (*gorm.Repository, error) {
	dbConf := &gorm.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}

	var repo *gorm.Repository
	err := backoff.Retry(func() error {
		var err error
		repo, err = gorm.NewRepository(dbConf)
		if err != nil {
			logger.Warn("database not ready, retrying", zap.Error(err))
		}
		return err
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// waitForShutdown blocks until an interrupt or SIGTERM is received, then shuts down the server.
func waitForShutdown(server *handlers.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	server.Stop()
	logger.Info("Server stopped properly")
}
