package availability

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TimeRange is one open/close interval within a day. A close at or
// before the open is treated as crossing midnight during slot
// generation. The ID only exists so the editor can address individual
// ranges; it carries no scheduling meaning.
type TimeRange struct {
	ID    string `json:"id"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Day is the availability configuration for one weekday.
type Day struct {
	ID                         string      `json:"id"`
	Name                       string      `json:"name"`
	ShortName                  string      `json:"shortName"`
	Enabled                    bool        `json:"enabled"`
	TimeRanges                 []TimeRange `json:"timeRanges"`
	ReservationInterval        int         `json:"reservationInterval"`
	LastReservationBeforeClose int         `json:"lastReservationBeforeClose"`
}

// Week is the full weekly schedule: exactly seven days keyed by id
// "1" (Monday) through "7" (Sunday). Lookups always go through the id,
// never the slice position, so a reordered document stays correct.
type Week []Day

var dayNames = [7][2]string{
	{"Monday", "Mon"},
	{"Tuesday", "Tue"},
	{"Wednesday", "Wed"},
	{"Thursday", "Thu"},
	{"Friday", "Fri"},
	{"Saturday", "Sat"},
	{"Sunday", "Sun"},
}

// DefaultWeek returns a disabled seven-day skeleton for the editor to
// start from when no schedule has ever been saved.
func DefaultWeek() Week {
	week := make(Week, 7)
	for i, names := range dayNames {
		week[i] = Day{
			ID:                         strconv.Itoa(i + 1),
			Name:                       names[0],
			ShortName:                  names[1],
			Enabled:                    false,
			TimeRanges:                 []TimeRange{},
			ReservationInterval:        30,
			LastReservationBeforeClose: 0,
		}
	}
	return week
}

// WeekdayID maps a calendar date to a weekday id: Monday=1 through
// Saturday=6, Sunday=7.
func WeekdayID(t time.Time) string {
	if t.Weekday() == time.Sunday {
		return "7"
	}
	return strconv.Itoa(int(t.Weekday()))
}

// Day returns the day record with the given id, or false when the
// document has no such day. A missing day means closed.
func (w Week) Day(id string) (Day, bool) {
	for _, d := range w {
		if d.ID == id {
			return d, true
		}
	}
	return Day{}, false
}

// Clone returns a deep copy of the week.
func (w Week) Clone() Week {
	if w == nil {
		return nil
	}
	out := make(Week, len(w))
	for i, d := range w {
		out[i] = d
		out[i].TimeRanges = make([]TimeRange, len(d.TimeRanges))
		copy(out[i].TimeRanges, d.TimeRanges)
	}
	return out
}

// Equal reports whether two weeks describe the same schedule. Days are
// matched by id regardless of order; time ranges within a day are
// compared in sequence order.
func Equal(a, b Week) bool {
	if len(a) != len(b) {
		return false
	}
	byID := make(map[string]Day, len(b))
	for _, d := range b {
		byID[d.ID] = d
	}
	for _, d := range a {
		other, ok := byID[d.ID]
		if !ok {
			return false
		}
		if !dayEqual(d, other) {
			return false
		}
	}
	return true
}

func dayEqual(a, b Day) bool {
	if a.ID != b.ID || a.Name != b.Name || a.ShortName != b.ShortName ||
		a.Enabled != b.Enabled ||
		a.ReservationInterval != b.ReservationInterval ||
		a.LastReservationBeforeClose != b.LastReservationBeforeClose {
		return false
	}
	if len(a.TimeRanges) != len(b.TimeRanges) {
		return false
	}
	for i := range a.TimeRanges {
		if a.TimeRanges[i] != b.TimeRanges[i] {
			return false
		}
	}
	return true
}

// CopyToAllDays applies the source day's time ranges, interval, buffer
// and enabled flag to every other day. Copied ranges get fresh ids so
// later edits to one day cannot mutate another. The source day itself
// is untouched and the result comes back sorted by numeric id.
func CopyToAllDays(w Week, sourceID string) (Week, error) {
	source, ok := w.Day(sourceID)
	if !ok {
		return nil, fmt.Errorf("no day with id %q", sourceID)
	}

	out := w.Clone()
	for i := range out {
		if out[i].ID == sourceID {
			continue
		}
		out[i].Enabled = source.Enabled
		out[i].ReservationInterval = source.ReservationInterval
		out[i].LastReservationBeforeClose = source.LastReservationBeforeClose
		out[i].TimeRanges = make([]TimeRange, len(source.TimeRanges))
		for j, r := range source.TimeRanges {
			out[i].TimeRanges[j] = TimeRange{
				ID:    uuid.New().String(),
				Open:  r.Open,
				Close: r.Close,
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].ID)
		b, _ := strconv.Atoi(out[j].ID)
		return a < b
	})
	return out, nil
}

// Validate enforces the editor-level rules before a week may be saved:
// exactly seven days with ids "1".."7", a positive reservation
// interval, a non-negative pre-close buffer, and well-formed HH:MM on
// every non-empty range bound. Generation itself stays fail-soft; this
// is the layer that refuses bad configuration.
func Validate(w Week) error {
	if len(w) != 7 {
		return fmt.Errorf("schedule must contain exactly 7 days, got %d", len(w))
	}
	seen := make(map[string]bool, 7)
	for _, d := range w {
		n, err := strconv.Atoi(d.ID)
		if err != nil || n < 1 || n > 7 {
			return fmt.Errorf("invalid day id %q", d.ID)
		}
		if seen[d.ID] {
			return fmt.Errorf("duplicate day id %q", d.ID)
		}
		seen[d.ID] = true

		if d.ReservationInterval <= 0 {
			return fmt.Errorf("day %s: reservation interval must be positive", d.ID)
		}
		if d.LastReservationBeforeClose < 0 {
			return fmt.Errorf("day %s: last-reservation buffer must not be negative", d.ID)
		}
		for _, r := range d.TimeRanges {
			if r.Open != "" {
				if _, err := ParseClock(r.Open); err != nil {
					return fmt.Errorf("day %s: %w", d.ID, err)
				}
			}
			if r.Close != "" {
				if _, err := ParseClock(r.Close); err != nil {
					return fmt.Errorf("day %s: %w", d.ID, err)
				}
			}
		}
	}
	return nil
}

// Value serializes the week as JSON so the whole document lives in a
// single column and saves stay wholesale (no partial patching).
func (w Week) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}
	return json.Marshal(w)
}

// Scan implements sql.Scanner for the JSON document column.
func (w *Week) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, w)
	case string:
		return json.Unmarshal([]byte(v), w)
	default:
		return fmt.Errorf("cannot scan %T into availability.Week", value)
	}
}
