package booking

import (
	"reflect"
	"testing"
)

func TestHalfHourSlots(t *testing.T) {
	got := HalfHourSlots(11, 3)
	want := []string{
		"11.00 AM - 11.30 AM",
		"11.30 AM - 12.00 PM",
		"12.00 PM - 12.30 PM",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDefaultCatalogue(t *testing.T) {
	seen := map[string]bool{}
	for _, svc := range DefaultCatalogue() {
		if seen[svc.Name] {
			t.Fatalf("duplicate service %q", svc.Name)
		}
		seen[svc.Name] = true
		if len(svc.Slots) == 0 {
			t.Fatalf("%q has no slots", svc.Name)
		}
	}
	if !seen["Teeth Cleaning"] {
		t.Fatal("catalogue should contain Teeth Cleaning")
	}
}
