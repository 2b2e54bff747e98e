package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-emprecords/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// fetchRetryDelay spaces out fetches while the broker keeps failing.
var fetchRetryDelay = time.Second

// MessageReader is the subset of *kafkago.Reader the consumer loop needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type SummaryInitializer interface {
	InitSummary(ctx context.Context, employeeID string) error
}

// ConsumeEmployeeLifecycle seeds an empty leave summary for every new
// employee. Undecodable messages are committed and skipped; failed inits are
// left uncommitted.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	summaries SummaryInitializer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			select {
			case <-ctx.Done():
				log.Info("employee lifecycle consumer stopped")
				return
			case <-time.After(fetchRetryDelay):
			}
			continue
		}

		handleEmployeeLifecycle(ctx, reader, summaries, msg, log)
	}
}

func handleEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	summaries SummaryInitializer,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.EmployeeID == "" {
		log.Error("decode employee_created event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if event.EventType != "" && event.EventType != events.EventTypeEmployeeCreated {
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if err := summaries.InitSummary(ctx, event.EmployeeID); err != nil {
		log.Error("init leave summary failed",
			zap.String("request_id", event.RequestID),
			zap.String("employee_id", event.EmployeeID),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit employee lifecycle message failed", zap.Error(err))
		return
	}

	log.Info("leave summary initialized from employee_created event",
		zap.String("request_id", event.RequestID),
		zap.String("employee_id", event.EmployeeID),
	)
}
