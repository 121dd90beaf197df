package booking

import (
	"context"
	"fmt"

	bookingRepo "github.com/ArafatSadi1/doctors-portal/database/repository/booking"
	serviceRepo "github.com/ArafatSadi1/doctors-portal/database/repository/service"
	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/services/notification"
	"github.com/ArafatSadi1/doctors-portal/utils"

	"go.uber.org/zap"
)

// BookingService covers bookings, the service catalogue and availability.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (LedgerResult, error)
	GetPatientBookings(ctx context.Context, patient string) ([]models.Booking, error)
	GetServices(ctx context.Context) ([]models.Service, error)
	GetAvailability(ctx context.Context, date string) ([]models.Service, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Services serviceRepo.ServiceRepository
	Ledger   *Ledger
	Notifier notification.Notifier
	Logger   *zap.Logger
}

func NewDefaultBookingService(
	bookings bookingRepo.BookingRepository,
	services serviceRepo.ServiceRepository,
	locker utils.KeyLocker,
	notifier notification.Notifier,
	logger *zap.Logger,
) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings: bookings,
		Services: services,
		Ledger:   NewLedger(bookings, locker),
		Notifier: notifier,
		Logger:   logger,
	}
}

// CreateBooking runs the ledger guard and, for a new booking, hands the confirmation email
// to the notifier. Notification failures are logged and never change the result.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (LedgerResult, error) {
	result, err := s.Ledger.TryCreateBooking(ctx, req.ToBooking())
	if err != nil {
		return LedgerResult{}, err
	}
	if result.Duplicate != nil {
		s.Logger.Info("CreateBooking: duplicate booking",
			zap.String("treatment", req.Treatment),
			zap.String("date", req.Date),
			zap.String("patient", req.Patient))
		return result, nil
	}

	if s.Notifier != nil {
		if err := s.Notifier.NotifyBookingConfirmed(ctx, *result.Created); err != nil {
			s.Logger.Error("CreateBooking: failed to schedule confirmation email",
				zap.String("bookingID", result.Created.ID.Hex()), zap.Error(err))
		}
	}
	return result, nil
}

func (s *DefaultBookingService) GetPatientBookings(ctx context.Context, patient string) ([]models.Booking, error) {
	return s.Bookings.FindByPatient(ctx, patient)
}

func (s *DefaultBookingService) GetServices(ctx context.Context) ([]models.Service, error) {
	return s.Services.GetAll(ctx)
}

// GetAvailability loads the catalogue and the bookings of date and returns the open slots.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, date string) ([]models.Service, error) {
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", utils.ErrBadRequest)
	}
	services, err := s.Services.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return ComputeAvailability(services, bookings, date), nil
}
