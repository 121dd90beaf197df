package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/ArafatSadi1/doctors-portal/models"
)

var appointmentHTML = template.Must(template.New("appointment").Parse(`<div>
<p>Hello {{.Booking.PatientName}}</p>
<h3>Your Appointment for {{.Booking.Treatment}} is confirmed</h3>
<p>Looking forward to seeing you on {{.Booking.Date}} at {{.Booking.Slot}}.</p>
<h3>Our Address</h3>
<p>{{.Address}}</p>
</div>
`))

// BuildAppointmentEmail renders the confirmation email for booking.
func BuildAppointmentEmail(booking models.Booking, clinicAddress string) (EmailMessage, error) {
	subject := fmt.Sprintf("Your Appointment for %s is on %s at %s", booking.Treatment, booking.Date, booking.Slot)

	var html bytes.Buffer
	err := appointmentHTML.Execute(&html, struct {
		Booking models.Booking
		Address string
	}{booking, clinicAddress})
	if err != nil {
		return EmailMessage{}, fmt.Errorf("render appointment email: %w", err)
	}

	return EmailMessage{
		To:      booking.Patient,
		ToName:  booking.PatientName,
		Subject: subject,
		Text:    subject,
		HTML:    html.String(),
	}, nil
}

// AppointmentMailer renders and sends appointment confirmations.
type AppointmentMailer struct {
	Sender        EmailSender
	ClinicAddress string
}

func (m *AppointmentMailer) SendAppointmentConfirmation(ctx context.Context, booking models.Booking) error {
	msg, err := BuildAppointmentEmail(booking, m.ClinicAddress)
	if err != nil {
		return err
	}
	if err := m.Sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send appointment email to %s: %w", booking.Patient, err)
	}
	return nil
}
