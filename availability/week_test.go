package availability

import (
	"testing"
	"time"
)

func TestWeekdayID(t *testing.T) {
	// 2026-08-31 is a Monday.
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	cases := map[int]string{
		0: "1", // Monday
		1: "2",
		2: "3",
		3: "4",
		4: "5",
		5: "6",
		6: "7", // Sunday
	}
	for offset, want := range cases {
		date := monday.AddDate(0, 0, offset)
		if got := WeekdayID(date); got != want {
			t.Errorf("WeekdayID(%s %s) = %q, want %q", date.Format("2006-01-02"), date.Weekday(), got, want)
		}
	}
}

func TestDefaultWeekShape(t *testing.T) {
	week := DefaultWeek()
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	for i, d := range week {
		if d.Enabled {
			t.Errorf("day %s should start disabled", d.ID)
		}
		if d.ReservationInterval <= 0 {
			t.Errorf("day %s should have a positive default interval", d.ID)
		}
		if i == 0 && d.Name != "Monday" {
			t.Errorf("expected first day Monday, got %s", d.Name)
		}
		if i == 6 && d.ID != "7" {
			t.Errorf("expected last day id 7, got %s", d.ID)
		}
	}
	if err := Validate(week); err != nil {
		t.Errorf("default week should validate: %v", err)
	}
}

func TestDayLookupByID(t *testing.T) {
	week := DefaultWeek()
	day, ok := week.Day("5")
	if !ok {
		t.Fatal("expected to find day 5")
	}
	if day.Name != "Friday" {
		t.Errorf("expected Friday, got %s", day.Name)
	}

	if _, ok := week.Day("0"); ok {
		t.Error("did not expect to find day 0")
	}
}

func TestCloneIsDeep(t *testing.T) {
	week := DefaultWeek()
	week[0].TimeRanges = []TimeRange{{ID: "r1", Open: "09:00", Close: "17:00"}}

	clone := week.Clone()
	clone[0].TimeRanges[0].Open = "10:00"
	clone[1].Enabled = true

	if week[0].TimeRanges[0].Open != "09:00" {
		t.Error("mutating the clone changed the original's time range")
	}
	if week[1].Enabled {
		t.Error("mutating the clone changed the original's enabled flag")
	}
}

func TestEqualIgnoresDayOrder(t *testing.T) {
	a := DefaultWeek()
	a[0].Enabled = true
	a[0].TimeRanges = []TimeRange{{ID: "r1", Open: "09:00", Close: "17:00"}}

	b := a.Clone()
	b[0], b[6] = b[6], b[0]

	if !Equal(a, b) {
		t.Error("expected weeks with reordered days to compare equal")
	}
}

func TestEqualDetectsRangeOrder(t *testing.T) {
	a := DefaultWeek()
	a[0].TimeRanges = []TimeRange{
		{ID: "r1", Open: "09:00", Close: "12:00"},
		{ID: "r2", Open: "14:00", Close: "18:00"},
	}

	b := a.Clone()
	b[0].TimeRanges[0], b[0].TimeRanges[1] = b[0].TimeRanges[1], b[0].TimeRanges[0]

	if Equal(a, b) {
		t.Error("expected range order within a day to be significant")
	}
}

func TestEqualDetectsValueChange(t *testing.T) {
	a := DefaultWeek()
	b := a.Clone()
	b[3].ReservationInterval = 45

	if Equal(a, b) {
		t.Error("expected interval change to be detected")
	}
}

func TestCopyToAllDays(t *testing.T) {
	week := DefaultWeek()
	for i := range week {
		if week[i].ID == "3" {
			week[i].Enabled = true
			week[i].ReservationInterval = 45
			week[i].LastReservationBeforeClose = 15
			week[i].TimeRanges = []TimeRange{
				{ID: "src-1", Open: "09:00", Close: "12:00"},
				{ID: "src-2", Open: "18:00", Close: "22:00"},
			}
		}
	}

	out, err := CopyToAllDays(week, "3")
	if err != nil {
		t.Fatalf("CopyToAllDays failed: %v", err)
	}
	if len(out) != 7 {
		t.Fatalf("expected 7 days, got %d", len(out))
	}

	// Result is sorted by numeric id.
	for i, d := range out {
		if want := byte('1' + i); d.ID[0] != want {
			t.Errorf("position %d: expected id %c, got %s", i, want, d.ID)
		}
	}

	source, _ := out.Day("3")
	if source.TimeRanges[0].ID != "src-1" || source.TimeRanges[1].ID != "src-2" {
		t.Error("source day's range ids must be untouched")
	}

	seenIDs := map[string]string{}
	for _, d := range out {
		if d.ID != "3" {
			if !d.Enabled || d.ReservationInterval != 45 || d.LastReservationBeforeClose != 15 {
				t.Errorf("day %s: scalar settings not copied", d.ID)
			}
			if len(d.TimeRanges) != 2 {
				t.Fatalf("day %s: expected 2 ranges, got %d", d.ID, len(d.TimeRanges))
			}
			if d.TimeRanges[0].Open != "09:00" || d.TimeRanges[1].Close != "22:00" {
				t.Errorf("day %s: range bounds not copied", d.ID)
			}
		}
		for _, r := range d.TimeRanges {
			if owner, dup := seenIDs[r.ID]; dup {
				t.Errorf("range id %s shared between days %s and %s", r.ID, owner, d.ID)
			}
			seenIDs[r.ID] = d.ID
		}
	}

	// The input week is not mutated.
	original, _ := week.Day("1")
	if original.Enabled || len(original.TimeRanges) != 0 {
		t.Error("CopyToAllDays mutated its input")
	}
}

func TestCopyToAllDaysUnknownSource(t *testing.T) {
	if _, err := CopyToAllDays(DefaultWeek(), "8"); err == nil {
		t.Error("expected error for unknown source day")
	}
}

func TestValidateRejectsBadWeeks(t *testing.T) {
	short := DefaultWeek()[:6]
	if err := Validate(short); err == nil {
		t.Error("expected error for 6-day week")
	}

	dup := DefaultWeek()
	dup[1].ID = "1"
	if err := Validate(dup); err == nil {
		t.Error("expected error for duplicate day id")
	}

	badInterval := DefaultWeek()
	badInterval[0].ReservationInterval = 0
	if err := Validate(badInterval); err == nil {
		t.Error("expected error for zero interval")
	}

	badBuffer := DefaultWeek()
	badBuffer[0].LastReservationBeforeClose = -5
	if err := Validate(badBuffer); err == nil {
		t.Error("expected error for negative buffer")
	}

	badTime := DefaultWeek()
	badTime[0].TimeRanges = []TimeRange{{ID: "r1", Open: "25:00", Close: "11:00"}}
	if err := Validate(badTime); err == nil {
		t.Error("expected error for malformed open time")
	}

	// Overnight ranges are legitimate and must pass.
	overnight := DefaultWeek()
	overnight[0].TimeRanges = []TimeRange{{ID: "r1", Open: "22:00", Close: "02:00"}}
	if err := Validate(overnight); err != nil {
		t.Errorf("overnight range should validate: %v", err)
	}
}

func TestWeekScanValueRoundTrip(t *testing.T) {
	week := DefaultWeek()
	week[0].Enabled = true
	week[0].TimeRanges = []TimeRange{{ID: "r1", Open: "09:00", Close: "17:00"}}

	value, err := week.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var restored Week
	if err := restored.Scan(value); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !Equal(week, restored) {
		t.Error("week changed across Value/Scan round trip")
	}
}
