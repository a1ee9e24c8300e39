// Package schedule holds the deterministic scheduling and payroll rules:
// working-day classification, multi-day slot expansion, shift edits, the
// hours/payroll aggregation and the idleness audit. It is the single source
// of truth for "which hours get paid" — every HTTP surface that reports
// hours or money calls into this package instead of re-deriving the rule.
//
// Everything here is pure: no database, no clock reads, no errors. Degenerate
// inputs (empty schedules, unknown employees) yield zero totals.
package schedule

import "time"

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Slot is one of the three fixed 4-hour daily windows.
type Slot string

const (
	SlotMorning   Slot = "MORNING"
	SlotAfternoon Slot = "AFTERNOON"
	SlotNight     Slot = "NIGHT"
)

// AllSlots lists the three slots in day order.
func AllSlots() []Slot {
	return []Slot{SlotMorning, SlotAfternoon, SlotNight}
}

// ValidSlot reports whether s names one of the three defined slots.
func ValidSlot(s Slot) bool {
	return s == SlotMorning || s == SlotAfternoon || s == SlotNight
}

// ShiftType classifies an employee-day.
type ShiftType string

const (
	TypeT1    ShiftType = "T1"
	TypeQ1    ShiftType = "Q1"
	TypePlan  ShiftType = "PLAN"
	TypeFinal ShiftType = "FINAL"
	TypeOff   ShiftType = "OFF"
)

// Billable reports whether active slots under this type generate paid hours.
// FINAL conventionally carries all three slots but is never paid.
func (t ShiftType) Billable() bool {
	return t == TypeT1 || t == TypeQ1 || t == TypePlan
}

// ValidShiftType reports whether t is one of the five known types.
func ValidShiftType(t ShiftType) bool {
	switch t {
	case TypeT1, TypeQ1, TypePlan, TypeFinal, TypeOff:
		return true
	}
	return false
}

// Bucket is a payroll aggregation group, independent of the employee's
// nominal contract hours.
type Bucket string

const (
	Bucket40H Bucket = "40H"
	Bucket20H Bucket = "20H"
)

// Bucket maps a slot to its payroll bucket: morning and afternoon hours
// accumulate into "40H", night hours into "20H".
func (s Slot) Bucket() Bucket {
	if s == SlotNight {
		return Bucket20H
	}
	return Bucket40H
}

const (
	// SlotHours is the fixed length of every slot.
	SlotHours = 4
	// DailyCapacityHours is the theoretical per-day capacity (3 slots x 4h).
	DailyCapacityHours = SlotHours * 3
	// HourlyRate is the fixed hourly rate in R$, shared by every view.
	HourlyRate = 32.0
)

// SlotDetail is the per-slot booking metadata.
type SlotDetail struct {
	CourseName  string `json:"course_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCancelled bool   `json:"is_cancelled"`
}

// DayShift is one employee-day. Slots holds the active slots; a slot is
// active iff it has an entry here.
type DayShift struct {
	Type       ShiftType           `json:"type"`
	CourseName string              `json:"course_name"`
	Slots      map[Slot]SlotDetail `json:"slots"`
}

// HasSlot reports whether the given slot is active on this day.
func (d DayShift) HasSlot(s Slot) bool {
	_, ok := d.Slots[s]
	return ok
}

// EmployeeSchedule maps date strings (YYYY-MM-DD) to day shifts.
type EmployeeSchedule map[string]DayShift

// Clone returns a deep copy so edits never alias aggregation snapshots.
func (es EmployeeSchedule) Clone() EmployeeSchedule {
	out := make(EmployeeSchedule, len(es))
	for date, day := range es {
		copied := DayShift{Type: day.Type, CourseName: day.CourseName}
		if day.Slots != nil {
			copied.Slots = make(map[Slot]SlotDetail, len(day.Slots))
			for s, det := range day.Slots {
				copied.Slots[s] = det
			}
		}
		out[date] = copied
	}
	return out
}

// EmployeeRef is the minimal employee identity the pure functions need.
type EmployeeRef struct {
	ID   uint
	Name string
}

// Period selects either one calendar month or a whole year (Month == 0).
type Period struct {
	Year  int
	Month time.Month
}

func MonthPeriod(year int, month time.Month) Period {
	return Period{Year: year, Month: month}
}

func YearPeriod(year int) Period {
	return Period{Year: year}
}

// Range returns the half-open [start, end) day range of the period.
func (p Period) Range() (start, end time.Time) {
	if p.Month == 0 {
		start = time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	}
	start = time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
