package availability

import (
	"log"
	"sort"
)

// GenerateSlots produces the ordered, deduplicated bookable start
// times for one day as "HH:MM" strings.
//
// Each range is processed independently: bounds are converted to
// minutes since midnight, a close at or before the open is pushed one
// day forward (22:00-02:00 keeps generating past midnight; an
// open==close range is therefore read as a full 24 hours, a known
// policy rather than a validation error), and slots step from the open
// by the day's reservation interval. With a zero buffer the close time
// itself is a valid start; a positive buffer keeps the last slot
// strictly clear of the final buffer minutes, so with close 11:00 and
// buffer 30 the 10:30 slot is already too late.
// Results from all ranges are merged, deduplicated on the
// formatted string and ordered by the underlying minute count, so
// slots past midnight display with a wrapped hour but still sort after
// the evening slots.
func GenerateSlots(day Day) []string {
	if !day.Enabled || len(day.TimeRanges) == 0 {
		return []string{}
	}

	// A non-positive interval would loop forever. The editor rejects
	// it on save; a document that slipped through yields no slots.
	if day.ReservationInterval <= 0 {
		log.Printf("availability: day %s has non-positive reservation interval %d, generating no slots",
			day.ID, day.ReservationInterval)
		return []string{}
	}

	var minutes []int
	for _, r := range day.TimeRanges {
		if r.Open == "" || r.Close == "" {
			continue
		}

		open := TimeToMinutes(r.Open)
		close := TimeToMinutes(r.Close)
		if close <= open {
			close += MinutesPerDay
		}

		lastSlotStart := close - day.LastReservationBeforeClose
		if day.LastReservationBeforeClose > 0 {
			// Strictly clear of the buffer window; only a zero buffer
			// admits a slot at the bound itself.
			lastSlotStart--
		}
		for current := open; current <= lastSlotStart; current += day.ReservationInterval {
			minutes = append(minutes, current)
		}
	}

	sort.Ints(minutes)

	slots := make([]string, 0, len(minutes))
	seen := make(map[string]bool, len(minutes))
	for _, m := range minutes {
		label := formatSlot(m)
		if seen[label] {
			continue
		}
		seen[label] = true
		slots = append(slots, label)
	}
	return slots
}

// SlotsForWeekday resolves the weekday record by id and generates its
// slots. A missing day record means closed.
func SlotsForWeekday(w Week, dayID string) []string {
	day, ok := w.Day(dayID)
	if !ok {
		return []string{}
	}
	return GenerateSlots(day)
}
