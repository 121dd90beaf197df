package handlers_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]models.User
	// lookups counts GetByEmail calls.
	lookups int
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]models.User{}}
}

func (m *memUsers) GetAll(context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUsers) Upsert(_ context.Context, email string, req models.UserUpsertRequest) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		id := primitive.NewObjectID()
		m.users[email] = models.User{ID: id, Email: email, Name: req.Name, Role: models.RoleNone, CreatedAt: time.Now()}
		return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	m.users[email] = u
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memUsers) SetRole(_ context.Context, email string, role models.Role) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return &models.UpdateResult{Acknowledged: true}, nil
	}
	u.Role = role
	m.users[email] = u
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memUsers) put(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.Email] = u
}

type memDoctors struct {
	mu      sync.Mutex
	doctors []models.Doctor
}

func (m *memDoctors) GetAll(context.Context) ([]models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Doctor{}, m.doctors...), nil
}

func (m *memDoctors) Create(_ context.Context, d *models.Doctor) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.doctors {
		if existing.Email == d.Email {
			return nil, fmt.Errorf("insert doctor %s: %w", d.Email, utils.ErrConflict)
		}
	}
	d.ID = primitive.NewObjectID()
	m.doctors = append(m.doctors, *d)
	return &models.InsertResult{Acknowledged: true, InsertedID: d.ID}, nil
}

func (m *memDoctors) DeleteByEmail(_ context.Context, email string) (*models.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.doctors {
		if d.Email == email {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.DeleteResult{Acknowledged: true}, nil
}

type memServices struct {
	services []models.Service
}

func (m *memServices) GetAll(context.Context) ([]models.Service, error) {
	return m.services, nil
}

type memBookings struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (m *memBookings) FindByKey(_ context.Context, treatment, date, patient string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.Treatment == treatment && b.Date == date && b.Patient == patient {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memBookings) Insert(_ context.Context, b *models.Booking) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = primitive.NewObjectID()
	m.bookings = append(m.bookings, *b)
	return &models.InsertResult{Acknowledged: true, InsertedID: b.ID}, nil
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

type countingNotifier struct {
	mu    sync.Mutex
	calls int
}

func (n *countingNotifier) NotifyBookingConfirmed(context.Context, models.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	return nil
}
