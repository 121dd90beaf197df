package notification

import (
	"context"

	"github.com/ArafatSadi1/doctors-portal/models"
)

// Notifier tells a patient about a new booking. Implementations must not block on delivery.
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking models.Booking) error
}

// EmailSender delivers one rendered email.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage is a rendered email ready for delivery.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}
