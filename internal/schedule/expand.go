package schedule

import "time"

// DefaultMaxScanDays bounds how far ahead the expansion walks. Hitting the
// bound truncates the result instead of erroring; Expansion.Truncated tells
// callers it happened.
const DefaultMaxScanDays = 365

// Expansion is the result of expanding a booking across working days.
type Expansion struct {
	Dates     []time.Time
	Truncated bool
}

// DateStrings returns the expanded dates formatted YYYY-MM-DD.
func (e Expansion) DateStrings() []string {
	out := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		out[i] = d.Format(DateLayout)
	}
	return out
}

// ExpandWorkingDates computes the sequence of working dates a booking of
// totalHours occupies, starting at start inclusive and skipping weekends and
// holidays. Each slot holds SlotHours, so the booking needs
// ceil(totalHours/SlotHours) days.
//
// totalHours <= 0 means a single-day booking: the result is exactly [start],
// even when start itself is non-working — validating the start date is the
// caller's job. Otherwise the walk scans at most maxScanDays consecutive
// days, so fewer dates than requested may come back.
func ExpandWorkingDates(cal Calendar, start time.Time, totalHours, maxScanDays int) Expansion {
	if totalHours <= 0 {
		return Expansion{Dates: []time.Time{start}}
	}
	if maxScanDays <= 0 {
		maxScanDays = DefaultMaxScanDays
	}

	durationInDays := (totalHours + SlotHours - 1) / SlotHours

	var dates []time.Time
	for i := 0; i < maxScanDays && len(dates) < durationInDays; i++ {
		d := start.AddDate(0, 0, i)
		if cal.IsNonWorkingDay(d) {
			continue
		}
		dates = append(dates, d)
	}

	return Expansion{Dates: dates, Truncated: len(dates) < durationInDays}
}
