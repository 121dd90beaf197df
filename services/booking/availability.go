package booking

import "github.com/ArafatSadi1/doctors-portal/models"

// ComputeAvailability returns, for every service, the template slots that no booking on
// date has taken. The result is a fresh slice with fresh Slots; services and bookings are
// left untouched. Slot order follows the service template and a label is listed at most once.
func ComputeAvailability(services []models.Service, bookings []models.Booking, date string) []models.Service {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if b.Date != date {
			continue
		}
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]models.Service, 0, len(services))
	for _, svc := range services {
		taken := booked[svc.Name]
		remaining := make([]string, 0, len(svc.Slots))
		seen := make(map[string]struct{}, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, dup := seen[slot]; dup {
				continue
			}
			seen[slot] = struct{}{}
			if _, isTaken := taken[slot]; isTaken {
				continue
			}
			remaining = append(remaining, slot)
		}

		available := svc
		available.Slots = remaining
		out = append(out, available)
	}
	return out
}
