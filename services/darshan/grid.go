package darshan

import (
	"fmt"
	"time"

	"darshanam/models"
)

// SlotGrid produces the ordered HH:MM sequence from startHour:00 through
// endHour:00 inclusive, stepping by intervalMinutes. For a valid config the
// count is ((endHour-startHour)*60)/intervalMinutes + 1.
func SlotGrid(cfg models.SlotGridConfig) []string {
	if cfg.EndHour <= cfg.StartHour || cfg.IntervalMinutes <= 0 {
		return nil
	}
	total := ((cfg.EndHour-cfg.StartHour)*60)/cfg.IntervalMinutes + 1
	slots := make([]string, 0, total)
	for i := 0; i < total; i++ {
		totalMinutes := i * cfg.IntervalMinutes
		hour := totalMinutes/60 + cfg.StartHour
		minute := totalMinutes % 60
		slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
	}
	return slots
}

// FilterPast drops slots that are not strictly in the future when date is
// the current day; any other day keeps the full grid. Client-side filtering
// is advisory only, the booking procedure re-validates at submit time.
func FilterPast(slots []string, date, now time.Time) []string {
	loc := date.Location()
	localNow := now.In(loc)
	sameDay := date.Year() == localNow.Year() &&
		date.Month() == localNow.Month() &&
		date.Day() == localNow.Day()
	if !sameDay {
		return slots
	}

	kept := make([]string, 0, len(slots))
	for _, s := range slots {
		var h, m int
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			continue
		}
		slot := time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, loc)
		if slot.After(localNow) {
			kept = append(kept, s)
		}
	}
	return kept
}

// FormatLocalDate normalizes a date to YYYY-MM-DD using its local calendar
// fields. UTC conversion would shift the day for users east or west of UTC,
// so the wall-clock fields are used as-is.
func FormatLocalDate(d time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}

// FormatDisplayDate renders a date day-first for confirmation emails.
func FormatDisplayDate(d time.Time) string {
	return d.Format("02/01/2006")
}
