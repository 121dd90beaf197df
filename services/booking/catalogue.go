package booking

import (
	"fmt"

	"github.com/ArafatSadi1/doctors-portal/models"
)

// HalfHourSlots returns count consecutive 30 minute slot labels starting at startHour,
// formatted like "08.00 AM - 08.30 AM".
func HalfHourSlots(startHour, count int) []string {
	slots := make([]string, 0, count)
	minutes := startHour * 60
	for i := 0; i < count; i++ {
		slots = append(slots, clockLabel(minutes)+" - "+clockLabel(minutes+30))
		minutes += 30
	}
	return slots
}

func clockLabel(minutes int) string {
	minutes %= 24 * 60
	h, m := minutes/60, minutes%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d.%02d %s", h, m, suffix)
}

// DefaultCatalogue is the treatment list the seeder loads into an empty database.
func DefaultCatalogue() []models.Service {
	return []models.Service{
		{Name: "Teeth Orthodontics", Slots: HalfHourSlots(8, 10), Price: 99},
		{Name: "Cosmetic Dentistry", Slots: HalfHourSlots(10, 10), Price: 129},
		{Name: "Teeth Cleaning", Slots: HalfHourSlots(8, 12), Price: 49},
		{Name: "Cavity Protection", Slots: HalfHourSlots(13, 8), Price: 79},
		{Name: "Pediatric Dental", Slots: HalfHourSlots(9, 8), Price: 59},
		{Name: "Oral Surgery", Slots: HalfHourSlots(14, 6), Price: 199},
	}
}
