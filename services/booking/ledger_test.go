package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/utils"
)

func cleaning(patient, slot string) models.Booking {
	return models.Booking{Treatment: "Cleaning", Date: "2024-01-01", Slot: slot, Patient: patient}
}

func TestLedger_CreateThenDuplicate(t *testing.T) {
	store := &memBookings{}
	ledger := NewLedger(store, nil)
	ctx := context.Background()

	first, err := ledger.TryCreateBooking(ctx, cleaning("a@x.com", "10am"))
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if first.Created == nil || first.Duplicate != nil || first.Insert == nil {
		t.Fatalf("first booking should be created, got %+v", first)
	}
	if first.Created.ID.IsZero() {
		t.Fatal("created booking should carry its new ID")
	}

	// Same treatment, date and patient, different slot: still a duplicate.
	second, err := ledger.TryCreateBooking(ctx, cleaning("a@x.com", "11am"))
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.Created != nil || second.Duplicate == nil {
		t.Fatalf("second booking should be a duplicate, got %+v", second)
	}
	if second.Duplicate.Slot != "10am" {
		t.Fatalf("duplicate should be the stored booking, got slot %q", second.Duplicate.Slot)
	}
	if store.count() != 1 {
		t.Fatalf("ledger holds %d bookings, want 1", store.count())
	}
}

func TestLedger_DistinctKeysAreIndependent(t *testing.T) {
	store := &memBookings{}
	ledger := NewLedger(store, utils.NewLocalLocker())
	ctx := context.Background()

	candidates := []models.Booking{
		cleaning("a@x.com", "9am"),
		cleaning("b@x.com", "9am"),
		{Treatment: "Surgery", Date: "2024-01-01", Slot: "9am", Patient: "a@x.com"},
		{Treatment: "Cleaning", Date: "2024-01-02", Slot: "9am", Patient: "a@x.com"},
	}
	for _, c := range candidates {
		res, err := ledger.TryCreateBooking(ctx, c)
		if err != nil {
			t.Fatalf("%s: %v", c.BookingKey(), err)
		}
		if res.Created == nil {
			t.Fatalf("%s should be created", c.BookingKey())
		}
	}
	if store.count() != len(candidates) {
		t.Fatalf("ledger holds %d bookings, want %d", store.count(), len(candidates))
	}
}

func TestLedger_ConcurrentIdenticalRequests(t *testing.T) {
	store := &memBookings{}
	ledger := NewLedger(store, utils.NewLocalLocker())

	const n = 25
	var wg sync.WaitGroup
	var mu sync.Mutex
	created, duplicates := 0, 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := ledger.TryCreateBooking(context.Background(), cleaning("a@x.com", "10am"))
			if err != nil {
				t.Errorf("try: %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if res.Created != nil {
				created++
			} else {
				duplicates++
			}
		}()
	}
	wg.Wait()

	if created != 1 || duplicates != n-1 {
		t.Fatalf("created=%d duplicates=%d, want 1 and %d", created, duplicates, n-1)
	}
	if store.count() != 1 {
		t.Fatalf("ledger holds %d bookings, want 1", store.count())
	}
}

func TestLedger_UniqueIndexConflictBecomesDuplicate(t *testing.T) {
	store := &memBookings{bookings: []models.Booking{cleaning("a@x.com", "9am")}}
	// The first lookup misses, as if another instance inserted right after it.
	store.hideFromFind = 1
	ledger := NewLedger(store, nil)

	res, err := ledger.TryCreateBooking(context.Background(), cleaning("a@x.com", "10am"))
	if err != nil {
		t.Fatalf("try: %v", err)
	}
	if res.Duplicate == nil || res.Duplicate.Slot != "9am" {
		t.Fatalf("expected the stored booking as duplicate, got %+v", res)
	}
	if store.count() != 1 {
		t.Fatalf("ledger holds %d bookings, want 1", store.count())
	}
}

func TestLedger_StorageFailure(t *testing.T) {
	store := &memBookings{findErr: fmt.Errorf("%w: find booking: connection reset", utils.ErrUpstream)}
	ledger := NewLedger(store, nil)

	_, err := ledger.TryCreateBooking(context.Background(), cleaning("a@x.com", "10am"))
	if !errors.Is(err, utils.ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
	if store.count() != 0 {
		t.Fatal("nothing should be inserted when the lookup fails")
	}
}

func TestLedger_CancelledWhileWaitingForLock(t *testing.T) {
	locker := utils.NewLocalLocker()
	candidate := cleaning("a@x.com", "10am")
	release, err := locker.Lock(context.Background(), "booking:"+candidate.BookingKey())
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewLedger(&memBookings{}, locker).TryCreateBooking(ctx, candidate)
	if !errors.Is(err, utils.ErrLockTimeout) {
		t.Fatalf("err = %v, want ErrLockTimeout", err)
	}
	if !errors.Is(err, utils.ErrUpstream) {
		t.Fatalf("err = %v, want it to wrap ErrUpstream", err)
	}
	if got := utils.StatusFor(err); got != http.StatusServiceUnavailable {
		t.Fatalf("StatusFor = %d, want 503", got)
	}
}
