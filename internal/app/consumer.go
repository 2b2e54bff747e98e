package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-emprecords/internal/config"
	"go-emprecords/internal/events"
	"go-emprecords/internal/leave"
	"go-emprecords/internal/messaging/kafka"
	"go-emprecords/internal/messaging/kafka/consumer"
	"go-emprecords/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer seeds leave summaries for newly created employees.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	leaveService := leave.NewService(sqlDB, leave.NewRepository(gormDB), kafka.NewOutboxRepository(sqlDB), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeCreatedTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeEmployeeLifecycle(ctx, reader, leaveService, log)

	log.Info("consumer shutting down")
	return nil
}
