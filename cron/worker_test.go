package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/services/notification"
	"github.com/ArafatSadi1/doctors-portal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type recordingSender struct {
	sent []notification.EmailMessage
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg notification.EmailMessage) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func TestHandleAppointmentEmailTask(t *testing.T) {
	sender := &recordingSender{}
	handler := HandleAppointmentEmailTask(&notification.AppointmentMailer{Sender: sender, ClinicAddress: "Dhaka"}, zap.NewNop())

	task, err := tasks.NewAppointmentEmailTask(models.Booking{
		Treatment: "Teeth Cleaning", Date: "Jan 1, 2024", Slot: "08.00 AM - 08.30 AM", Patient: "a@x.com",
	}, 3)
	if err != nil {
		t.Fatalf("task: %v", err)
	}

	if err := handler(context.Background(), task); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(sender.sent) != 1 || sender.sent[0].To != "a@x.com" {
		t.Fatalf("sent %+v", sender.sent)
	}

	sender.err = errors.New("rate limited")
	if err := handler(context.Background(), task); err == nil || errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("delivery failures should be retried, got %v", err)
	}
}

func TestHandleAppointmentEmailTask_BadPayloadSkipsRetry(t *testing.T) {
	sender := &recordingSender{}
	handler := HandleAppointmentEmailTask(&notification.AppointmentMailer{Sender: sender}, zap.NewNop())

	cases := map[string]*asynq.Task{
		"not json":     asynq.NewTask(tasks.TypeAppointmentEmail, []byte("{")),
		"no recipient": asynq.NewTask(tasks.TypeAppointmentEmail, []byte(`{"booking":{"treatment":"Teeth Cleaning"}}`)),
	}
	for name, task := range cases {
		t.Run(name, func(t *testing.T) {
			if err := handler(context.Background(), task); !errors.Is(err, asynq.SkipRetry) {
				t.Fatalf("err = %v, want SkipRetry", err)
			}
		})
	}
	if len(sender.sent) != 0 {
		t.Fatal("nothing should be sent for a bad payload")
	}
}
