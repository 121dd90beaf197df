package repository

import (
	"context"
	"fmt"
	"time"

	bookingRepo "github.com/ArafatSadi1/doctors-portal/database/repository/booking"
	doctorRepo "github.com/ArafatSadi1/doctors-portal/database/repository/doctor"
	serviceRepo "github.com/ArafatSadi1/doctors-portal/database/repository/service"
	userRepo "github.com/ArafatSadi1/doctors-portal/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces.
type (
	UserRepository    = userRepo.UserRepository
	DoctorRepository  = doctorRepo.DoctorRepository
	ServiceRepository = serviceRepo.ServiceRepository
	BookingRepository = bookingRepo.BookingRepository
)

// Repositories bundles the Mongo repositories over one database.
type Repositories struct {
	Users    *userRepo.MongoUserRepo
	Doctors  *doctorRepo.MongoDoctorRepo
	Services *serviceRepo.MongoServiceRepo
	Bookings *bookingRepo.MongoBookingRepo
}

// NewMongoRepositories builds every repository over db with the given per-call timeout.
func NewMongoRepositories(db *mongo.Database, timeout time.Duration) *Repositories {
	return &Repositories{
		Users:    userRepo.NewMongoUserRepo(db, timeout),
		Doctors:  doctorRepo.NewMongoDoctorRepo(db, timeout),
		Services: serviceRepo.NewMongoServiceRepo(db, timeout),
		Bookings: bookingRepo.NewMongoBookingRepo(db, timeout),
	}
}

// EnsureIndexes creates the indexes of every collection. The booking index backs the
// one-booking-per-key invariant, so its failure is returned first.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := r.Bookings.EnsureIndexes(ctx); err != nil {
		return err
	}
	for name, ensure := range map[string]func(context.Context) error{
		"user":    r.Users.EnsureIndexes,
		"doctor":  r.Doctors.EnsureIndexes,
		"service": r.Services.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
