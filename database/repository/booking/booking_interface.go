package bookingRepo

import (
	"context"
	"time"

	"github.com/ArafatSadi1/doctors-portal/database"
	"github.com/ArafatSadi1/doctors-portal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	// FindByKey returns nil, nil when no booking matches (treatment, date, patient).
	FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	// Insert stores booking and sets its ID. A duplicate key fails with utils.ErrConflict.
	Insert(ctx context.Context, booking *models.Booking) (*models.InsertResult, error)
	FindByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
}

// MongoBookingRepo implements BookingRepository over the "booking-info" collection.
type MongoBookingRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoBookingRepo(db *mongo.Database, timeout time.Duration) *MongoBookingRepo {
	return &MongoBookingRepo{
		coll:    db.Collection(database.BookingsCollection),
		timeout: timeout,
	}
}
