package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/utils"
)

// LedgerStore is the slice of the booking repository the ledger needs.
type LedgerStore interface {
	FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) (*models.InsertResult, error)
}

// LedgerResult is the outcome of TryCreateBooking. Exactly one of Created and Duplicate is set.
type LedgerResult struct {
	Created   *models.Booking
	Insert    *models.InsertResult
	Duplicate *models.Booking
}

// Ledger enforces at most one booking per (treatment, date, patient).
type Ledger struct {
	Store  LedgerStore
	Locker utils.KeyLocker
}

func NewLedger(store LedgerStore, locker utils.KeyLocker) *Ledger {
	if locker == nil {
		locker = utils.NewLocalLocker()
	}
	return &Ledger{Store: store, Locker: locker}
}

// TryCreateBooking inserts candidate unless a booking with the same key exists, in which
// case the existing booking is returned as a duplicate. A duplicate is not an error.
func (l *Ledger) TryCreateBooking(ctx context.Context, candidate models.Booking) (LedgerResult, error) {
	release, err := l.Locker.Lock(ctx, "booking:"+candidate.BookingKey())
	if err != nil {
		return LedgerResult{}, fmt.Errorf("%w: lock booking key: %w", utils.ErrUpstream, err)
	}
	defer release()

	existing, err := l.Store.FindByKey(ctx, candidate.Treatment, candidate.Date, candidate.Patient)
	if err != nil {
		return LedgerResult{}, err
	}
	if existing != nil {
		return LedgerResult{Duplicate: existing}, nil
	}

	created := candidate
	res, err := l.Store.Insert(ctx, &created)
	if err == nil {
		return LedgerResult{Created: &created, Insert: res}, nil
	}
	if !errors.Is(err, utils.ErrConflict) {
		return LedgerResult{}, err
	}

	// Another writer got past the lock; the unique index kept its booking.
	winner, findErr := l.Store.FindByKey(ctx, candidate.Treatment, candidate.Date, candidate.Patient)
	if findErr != nil {
		return LedgerResult{}, findErr
	}
	if winner == nil {
		return LedgerResult{}, err
	}
	return LedgerResult{Duplicate: winner}, nil
}
