package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/ArafatSadi1/doctors-portal/models"

	"github.com/hibiken/asynq"
)

const (
	TypeAppointmentEmail = "email:appointment_confirmation"
	EmailQueue           = "default"
)

// AppointmentEmailPayload is the body of an appointment confirmation task.
type AppointmentEmailPayload struct {
	Booking models.Booking `json:"booking"`
}

func NewAppointmentEmailTask(booking models.Booking, maxRetry int) (*asynq.Task, error) {
	b, err := json.Marshal(AppointmentEmailPayload{Booking: booking})
	if err != nil {
		return nil, fmt.Errorf("marshal appointment email payload: %w", err)
	}
	return asynq.NewTask(TypeAppointmentEmail, b, asynq.MaxRetry(maxRetry), asynq.Queue(EmailQueue)), nil
}

func ParseAppointmentEmailPayload(task *asynq.Task) (AppointmentEmailPayload, error) {
	var p AppointmentEmailPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return AppointmentEmailPayload{}, fmt.Errorf("unmarshal appointment email payload: %w", err)
	}
	return p, nil
}
