package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gartstein/workforce/internal/workforce/config"
	"github.com/gartstein/workforce/internal/workforce/controller"
	gorm "github.com/gartstein/workforce/internal/workforce/db"
	"github.com/gartstein/workforce/internal/workforce/events"
	"github.com/gartstein/workforce/internal/workforce/handlers"
	"github.com/gartstein/workforce/internal/workforce/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type eventSink interface {
	controller.EventProducer
	Close()
}

func main() {
	path := config.DefaultPath
	if p := os.Getenv("WORKFORCE_CONFIG"); p != "" {
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := initLogger(cfg.LogLevel)
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	repo, err := gorm.NewRepository(initDatabase(cfg))
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	producer := initProducer(cfg, logger)
	defer producer.Close()

	v := validation.New()
	provinceSvc := controller.NewProvinceService(repo, producer, v, logger)
	employeeSvc := controller.NewEmployeeService(repo, producer, v, logger)
	workCenterSvc := controller.NewWorkCenterService(repo, producer, v, logger)

	api := handlers.NewAPI(provinceSvc, employeeSvc, workCenterSvc, logger)

	server := handlers.NewServer(cfg.GRPCPort, cfg.HTTPPort, logger)
	if err := server.RegisterHTTPGateway(
		[]grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		},
		api,
		cfg.JWTSecret); err != nil {
		logger.Fatal("Failed to register HTTP gateway", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	waitForShutdown(server, errCh, logger)
}

// initLogger initializes a Zap production logger at the configured level.
func initLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}

// initDatabase maps the service config to the repository config.
func initDatabase(cfg *config.Config) *gorm.Config {
	return &gorm.Config{
		Driver:   cfg.DBDriver,
		Path:     cfg.DBPath,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}
}

// initProducer connects to Kafka when brokers are configured.
func initProducer(cfg *config.Config, logger *zap.Logger) eventSink {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("no Kafka brokers configured, change events are disabled")
		return events.NopProducer{}
	}
	topic := cfg.Topic
	if topic == "" {
		topic = events.DefaultTopic
	}
	producer, err := events.NewProducer(cfg.KafkaBrokers, logger, topic)
	if err != nil {
		logger.Fatal("failed to initialize Kafka producer", zap.Error(err))
	}
	return producer
}

// waitForShutdown blocks until an interrupt, SIGTERM or a server error, then shuts down servers.
func waitForShutdown(server *handlers.Server, errCh <-chan error, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
		}
	}

	server.Stop()
	logger.Info("Servers stopped properly")
}
