package booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memBookings is an in-memory BookingRepository with the unique (treatment, date, patient)
// constraint of the real collection.
type memBookings struct {
	mu       sync.Mutex
	bookings []models.Booking
	findErr  error
	// hideFromFind makes FindByKey miss this many times, simulating a writer that raced
	// past the lookup.
	hideFromFind int
}

func (m *memBookings) FindByKey(_ context.Context, treatment, date, patient string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.hideFromFind > 0 {
		m.hideFromFind--
		return nil, nil
	}
	for _, b := range m.bookings {
		if b.Treatment == treatment && b.Date == date && b.Patient == patient {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memBookings) Insert(_ context.Context, booking *models.Booking) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.BookingKey() == booking.BookingKey() {
			return nil, fmt.Errorf("insert booking: %w", utils.ErrConflict)
		}
	}
	booking.ID = primitive.NewObjectID()
	m.bookings = append(m.bookings, *booking)
	return &models.InsertResult{Acknowledged: true, InsertedID: booking.ID}, nil
}

func (m *memBookings) FindByPatient(_ context.Context, patient string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) FindByDate(_ context.Context, date string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

type memServices struct {
	services []models.Service
	err      error
}

func (m *memServices) GetAll(context.Context) ([]models.Service, error) {
	return m.services, m.err
}

type recordingNotifier struct {
	mu       sync.Mutex
	sent     []models.Booking
	failWith error
}

func (n *recordingNotifier) NotifyBookingConfirmed(_ context.Context, b models.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, b)
	return n.failWith
}
