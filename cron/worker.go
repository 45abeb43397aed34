package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tourvia/config"
	"tourvia/services/receipt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeReceiptRelease marks a rendered confirmation artifact as offered for
// download once the fixed preview delay has elapsed.
const TypeReceiptRelease = "receipt:release"

type receiptReleasePayload struct {
	ConfirmationCode string `json:"confirmationCode"`
}

func queueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// AsynqDelivery schedules delayed receipt releases.
type AsynqDelivery struct {
	client *asynq.Client
}

// NewAsynqDelivery creates the task client for the delivery queue.
func NewAsynqDelivery() *AsynqDelivery {
	return &AsynqDelivery{client: asynq.NewClient(queueRedisOpt())}
}

// ScheduleDownloadRelease enqueues a release task processed after delay.
func (d *AsynqDelivery) ScheduleDownloadRelease(confirmationCode string, delay time.Duration) error {
	payload, err := json.Marshal(receiptReleasePayload{ConfirmationCode: confirmationCode})
	if err != nil {
		return fmt.Errorf("cron: failed to encode release payload: %w", err)
	}
	task := asynq.NewTask(TypeReceiptRelease, payload)
	if _, err := d.client.Enqueue(task, asynq.ProcessIn(delay)); err != nil {
		return fmt.Errorf("cron: failed to enqueue release task: %w", err)
	}
	return nil
}

// InitReceiptWorker runs the async worker in background.
func InitReceiptWorker(store *receipt.Store, logger *zap.Logger) {
	srv := asynq.NewServer(
		queueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReceiptRelease, handleReceiptRelease(store, logger))

	go func() {
		logger.Info("ReceiptWorker: starting async worker")
		if err := srv.Run(mux); err != nil {
			logger.Fatal("ReceiptWorker: failed to start worker", zap.Error(err))
		}
	}()
}

func handleReceiptRelease(store *receipt.Store, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p receiptReleasePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("ReceiptWorker: invalid payload", zap.Error(err))
			return err
		}

		if err := store.MarkReady(ctx, p.ConfirmationCode); err != nil {
			logger.Error("ReceiptWorker: failed to release artifact",
				zap.String("confirmationCode", p.ConfirmationCode),
				zap.Error(err))
			return err
		}

		logger.Info("ReceiptWorker: artifact released for download",
			zap.String("confirmationCode", p.ConfirmationCode))
		return nil
	}
}
