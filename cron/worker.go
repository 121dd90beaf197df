package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/ArafatSadi1/doctors-portal/services/notification"
	"github.com/ArafatSadi1/doctors-portal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// EmailWorker consumes appointment email tasks from the queue.
type EmailWorker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewEmailWorker builds the asynq server for the email queue.
func NewEmailWorker(redisOpts asynq.RedisClientOpt, mailer *notification.AppointmentMailer, logger *zap.Logger) *EmailWorker {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				tasks.EmailQueue: 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentEmail, HandleAppointmentEmailTask(mailer, logger))

	return &EmailWorker{server: srv, mux: mux, logger: logger}
}

// Start runs the worker in the background, retrying a failed start with backoff.
func (w *EmailWorker) Start() {
	go func() {
		w.logger.Info("[EmailWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.server.Start(w.mux)
			if err == nil {
				return
			}
			w.logger.Error("[EmailWorker] Failed to start worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				w.logger.Error("[EmailWorker] Max retry attempts reached, appointment emails stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func (w *EmailWorker) Shutdown() {
	w.server.Shutdown()
}

// HandleAppointmentEmailTask renders and sends one confirmation. Malformed payloads are
// not retried.
func HandleAppointmentEmailTask(mailer *notification.AppointmentMailer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseAppointmentEmailPayload(task)
		if err != nil {
			logger.Error("[EmailHandler] Invalid payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if p.Booking.Patient == "" {
			logger.Warn("[EmailHandler] Booking without patient email, skipping")
			return fmt.Errorf("missing patient email: %w", asynq.SkipRetry)
		}

		if err := mailer.SendAppointmentConfirmation(ctx, p.Booking); err != nil {
			logger.Error("[EmailHandler] Failed to send appointment email",
				zap.String("to", p.Booking.Patient), zap.Error(err))
			return err
		}
		logger.Info("[EmailHandler] Appointment email sent",
			zap.String("to", p.Booking.Patient),
			zap.String("treatment", p.Booking.Treatment),
			zap.String("date", p.Booking.Date))
		return nil
	}
}
