package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskEnqueuer is the part of *asynq.Client the notifier uses.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier hands confirmations to the asynq email worker.
type QueueNotifier struct {
	Client   TaskEnqueuer
	MaxRetry int
	Logger   *zap.Logger
}

func (n *QueueNotifier) NotifyBookingConfirmed(ctx context.Context, booking models.Booking) error {
	task, err := tasks.NewAppointmentEmailTask(booking, n.MaxRetry)
	if err != nil {
		return err
	}
	info, err := n.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue appointment email: %w", err)
	}
	n.Logger.Debug("Appointment email queued", zap.String("taskID", info.ID), zap.String("to", booking.Patient))
	return nil
}

// DirectNotifier sends in a background goroutine. It is used when no queue is configured.
type DirectNotifier struct {
	Mailer  *AppointmentMailer
	Timeout time.Duration
	Logger  *zap.Logger
}

func (n *DirectNotifier) NotifyBookingConfirmed(_ context.Context, booking models.Booking) error {
	timeout := n.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	go func() {
		// Detached from the request: the response must not wait for delivery.
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := n.Mailer.SendAppointmentConfirmation(ctx, booking); err != nil {
			n.Logger.Error("Appointment email failed", zap.String("to", booking.Patient), zap.Error(err))
		}
	}()
	return nil
}
