package schedule

import (
	"sort"
	"time"
)

// SlotEdit is the incoming state of one slot in a shift edit.
type SlotEdit struct {
	Slot       Slot   `json:"slot"`
	Active     bool   `json:"active"`
	CourseName string `json:"course_name"`
	StartDate  string `json:"start_date"`  // defaults to the base date
	TotalHours int    `json:"total_hours"` // > SlotHours triggers multi-day expansion
}

// ShiftEdit is a user edit of a single calendar day.
type ShiftEdit struct {
	Type       ShiftType  `json:"type"`
	CourseName string     `json:"course_name"`
	Slots      []SlotEdit `json:"slots"`
}

// EditResult reports which dates an edit touched, so callers persisting the
// schedule know exactly which rows to write.
type EditResult struct {
	Schedule  EmployeeSchedule
	Touched   []string
	Truncated bool
}

// ApplyShiftEdit merges a shift edit into the schedule and returns the
// updated copy.
//
// The base date's type is overwritten unconditionally. Type OFF clears all
// slots and discards any previously entered slot details for that day. Each
// active slot is stamped onto the base date, and — when its TotalHours
// exceeds a single slot — onto every subsequent working day of the booking
// via ExpandWorkingDates.
//
// The merge is additive and non-exclusive per slot: it never removes slot
// assignments placed on a date by a different booking's expansion. The last
// writer for an exact date+slot pair wins.
//
// baseDate is expected to be valid YYYY-MM-DD (the HTTP layer validates it).
// A slot whose own StartDate does not parse expands from the base date; if
// the base date does not parse either, expansion is skipped and the edit
// lands on the base date alone.
func ApplyShiftEdit(cal Calendar, sched EmployeeSchedule, baseDate string, edit ShiftEdit, maxScanDays int) EditResult {
	out := sched.Clone()

	day := out[baseDate]
	day.Type = edit.Type
	day.CourseName = edit.CourseName

	if edit.Type == TypeOff {
		day.Slots = nil
		out[baseDate] = day
		return EditResult{Schedule: out, Touched: []string{baseDate}}
	}
	out[baseDate] = day

	touched := map[string]bool{baseDate: true}
	truncated := false

	for _, se := range edit.Slots {
		if !se.Active || !ValidSlot(se.Slot) {
			continue
		}

		// The base date is always stamped; expansion only adds the
		// booking's further working days, which may start elsewhere when
		// the slot carries its own start date.
		dates := []string{baseDate}
		startStr, endStr := baseDate, baseDate

		if se.TotalHours > SlotHours {
			start, err := time.Parse(DateLayout, se.StartDate)
			if err != nil {
				// Fall back to the base date; a caller-supplied start
				// never sends the walk off from the zero time.
				start, err = time.Parse(DateLayout, baseDate)
			}
			if err == nil {
				exp := ExpandWorkingDates(cal, start, se.TotalHours, maxScanDays)
				expanded := exp.DateStrings()
				if len(expanded) > 0 {
					startStr = expanded[0]
					endStr = expanded[len(expanded)-1]
				}
				for _, date := range expanded {
					if date != baseDate {
						dates = append(dates, date)
					}
				}
				truncated = truncated || exp.Truncated
			}
		}

		detail := SlotDetail{
			CourseName: se.CourseName,
			StartDate:  startStr,
			EndDate:    endStr,
		}

		for _, date := range dates {
			stampSlot(out, date, edit.Type, se.Slot, detail)
			touched[date] = true
		}
	}

	ordered := make([]string, 0, len(touched))
	for date := range touched {
		ordered = append(ordered, date)
	}
	// YYYY-MM-DD sorts lexicographically in date order.
	sort.Strings(ordered)

	return EditResult{Schedule: out, Touched: ordered, Truncated: truncated}
}

// stampSlot ensures a day record exists on date and activates the slot with
// the given detail. Existing days keep their own type; only newly created
// records inherit the edit's type.
func stampSlot(sched EmployeeSchedule, date string, newType ShiftType, slot Slot, detail SlotDetail) {
	day, exists := sched[date]
	if !exists {
		day = DayShift{Type: newType}
	}
	if day.Slots == nil {
		day.Slots = make(map[Slot]SlotDetail)
	}
	day.Slots[slot] = detail
	sched[date] = day
}
