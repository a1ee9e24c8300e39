package schedule

import (
	"reflect"
	"testing"
	"time"
)

// marchWorkingDays2025 is the number of working days in March 2025
// (31 days, 10 weekend days, no fixed holidays).
const marchWorkingDays2025 = 21

func billableDay(t ShiftType, slots ...Slot) DayShift {
	day := DayShift{Type: t, Slots: make(map[Slot]SlotDetail)}
	for _, s := range slots {
		day.Slots[s] = SlotDetail{}
	}
	return day
}

func TestAggregateSingleShift(t *testing.T) {
	employees := []EmployeeRef{{ID: 1, Name: "Clara"}}
	schedules := map[uint]EmployeeSchedule{
		1: {"2025-03-10": billableDay(TypeT1, SlotMorning, SlotAfternoon)},
	}

	rep := Aggregate(NewCalendar(), employees, schedules, MonthPeriod(2025, time.March), nil)
	if len(rep.PerEmployee) != 1 {
		t.Fatalf("expected 1 employee summary, got %d", len(rep.PerEmployee))
	}
	sum := rep.PerEmployee[0]

	if got := sum.Buckets[Bucket40H].Hours; got != 8 {
		t.Errorf("40H hours = %d, want 8", got)
	}
	if got := sum.Buckets[Bucket40H].Gross; got != 256.0 {
		t.Errorf("40H gross = %.2f, want 256.00", got)
	}
	if got := sum.Buckets[Bucket20H].Hours; got != 0 {
		t.Errorf("20H hours = %d, want 0", got)
	}
	if sum.Net != 256.0 {
		t.Errorf("net with no deductions = %.2f, want 256.00", sum.Net)
	}
	if sum.DaysOff != marchWorkingDays2025-1 {
		t.Errorf("days off = %d, want %d", sum.DaysOff, marchWorkingDays2025-1)
	}
}

func TestAggregateWeekendContributesNothing(t *testing.T) {
	// A fully-slotted T1 shift on a Saturday: zero hours and no day-off.
	employees := []EmployeeRef{{ID: 1, Name: "Clara"}}
	schedules := map[uint]EmployeeSchedule{
		1: {"2025-03-15": billableDay(TypeT1, SlotMorning, SlotAfternoon, SlotNight)},
	}

	rep := Aggregate(NewCalendar(), employees, schedules, MonthPeriod(2025, time.March), nil)
	sum := rep.PerEmployee[0]

	if sum.TotalHours != 0 {
		t.Errorf("weekend shift contributed %d hours", sum.TotalHours)
	}
	if sum.DaysOff != marchWorkingDays2025 {
		t.Errorf("days off = %d, want %d (weekend never counts)", sum.DaysOff, marchWorkingDays2025)
	}
}

func TestAggregateFinalNeverBillable(t *testing.T) {
	// FINAL carries all three slots by convention but is excluded from
	// billing even on a working day, where it still counts as a day off.
	employees := []EmployeeRef{{ID: 1, Name: "Clara"}}
	schedules := map[uint]EmployeeSchedule{
		1: {
			"2025-03-10": billableDay(TypeT1, SlotMorning, SlotAfternoon),
			"2025-03-11": billableDay(TypeFinal, SlotMorning, SlotAfternoon, SlotNight),
			"2025-03-15": billableDay(TypeFinal, SlotMorning, SlotAfternoon, SlotNight), // Saturday
		},
	}

	rep := Aggregate(NewCalendar(), employees, schedules, MonthPeriod(2025, time.March), nil)
	sum := rep.PerEmployee[0]

	if sum.TotalHours != 8 {
		t.Errorf("total hours = %d, want 8 (FINAL excluded)", sum.TotalHours)
	}
	if sum.DaysOff != marchWorkingDays2025-1 {
		t.Errorf("days off = %d, want %d", sum.DaysOff, marchWorkingDays2025-1)
	}
}

func TestAggregateBillableWithoutSlotsIsDayOff(t *testing.T) {
	employees := []EmployeeRef{{ID: 1, Name: "Clara"}}
	schedules := map[uint]EmployeeSchedule{
		1: {"2025-03-10": {Type: TypeT1}},
	}

	rep := Aggregate(NewCalendar(), employees, schedules, MonthPeriod(2025, time.March), nil)
	if got := rep.PerEmployee[0].DaysOff; got != marchWorkingDays2025 {
		t.Errorf("days off = %d, want %d", got, marchWorkingDays2025)
	}
}

func TestAggregateNightGoesTo20H(t *testing.T) {
	employees := []EmployeeRef{{ID: 1, Name: "Clara"}}
	schedules := map[uint]EmployeeSchedule{
		1: {"2025-03-10": billableDay(TypePlan, SlotNight)},
	}

	rep := Aggregate(NewCalendar(), employees, schedules, MonthPeriod(2025, time.March), nil)
	sum := rep.PerEmployee[0]
	if sum.Buckets[Bucket20H].Hours != 4 || sum.Buckets[Bucket40H].Hours != 0 {
		t.Errorf("night slot bucketing wrong: 40H=%d 20H=%d",
			sum.Buckets[Bucket40H].Hours, sum.Buckets[Bucket20H].Hours)
	}
}

func TestAggregateCancelledSlotIsLostPotential(t *testing.T) {
	employees := []EmployeeRef{{ID: 1, Name: "Clara"}, {ID: 2, Name: "Jorge"}}
	schedules := map[uint]EmployeeSchedule{
		1: {"2025-03-10": {
			Type: TypeT1,
			Slots: map[Slot]SlotDetail{
				SlotMorning: {},
				SlotNight:   {IsCancelled: true},
			},
		}},
		2: {"2025-03-11": {
			Type:  TypeQ1,
			Slots: map[Slot]SlotDetail{SlotAfternoon: {IsCancelled: true}},
		}},
	}

	rep := Aggregate(NewCalendar(), employees, schedules, MonthPeriod(2025, time.March), nil)

	// Lost potential is tallied per employee, not only for the first one.
	clara, jorge := rep.PerEmployee[0], rep.PerEmployee[1]
	if clara.TotalHours != 4 || clara.LostHours != 4 || clara.LostValue != 4*HourlyRate {
		t.Errorf("clara: hours=%d lost=%d value=%.2f", clara.TotalHours, clara.LostHours, clara.LostValue)
	}
	if jorge.TotalHours != 0 || jorge.LostHours != 4 {
		t.Errorf("jorge: hours=%d lost=%d", jorge.TotalHours, jorge.LostHours)
	}
	if rep.Totals.LostHours != 8 {
		t.Errorf("total lost hours = %d, want 8", rep.Totals.LostHours)
	}
}

func TestAggregateDeductionsMayGoNegative(t *testing.T) {
	employees := []EmployeeRef{{ID: 1, Name: "Clara"}}
	schedules := map[uint]EmployeeSchedule{
		1: {"2025-03-10": billableDay(TypeT1, SlotMorning, SlotAfternoon)},
	}
	deductions := DeductionTable{
		Bucket40H: {IR: 100, INSS: 50, Unimed: 30},
		Bucket20H: {IR: 500},
	}

	rep := Aggregate(NewCalendar(), employees, schedules, MonthPeriod(2025, time.March), deductions)
	sum := rep.PerEmployee[0]

	if got := sum.Buckets[Bucket40H].Net; got != 256.0-180.0 {
		t.Errorf("40H net = %.2f, want 76.00", got)
	}
	// No floor: an empty bucket nets out its full deduction.
	if got := sum.Buckets[Bucket20H].Net; got != -500.0 {
		t.Errorf("20H net = %.2f, want -500.00", got)
	}
	if got := sum.Net; got != 76.0-500.0 {
		t.Errorf("total net = %.2f, want -424.00", got)
	}
}

func TestAggregateEmptyInputsYieldZero(t *testing.T) {
	rep := Aggregate(NewCalendar(), nil, nil, MonthPeriod(2025, time.March), nil)
	if len(rep.PerEmployee) != 0 || rep.Totals != (Totals{}) {
		t.Errorf("empty aggregate not zero: %+v", rep)
	}

	// An employee with no shifts gets zero pay and a full month of
	// days off, never a panic.
	rep = Aggregate(NewCalendar(), []EmployeeRef{{ID: 7, Name: "Ana"}}, nil, MonthPeriod(2025, time.March), nil)
	sum := rep.PerEmployee[0]
	if sum.TotalHours != 0 || sum.Gross != 0 {
		t.Errorf("employee without shifts earned hours: %+v", sum)
	}
	if sum.DaysOff != marchWorkingDays2025 {
		t.Errorf("days off = %d, want %d", sum.DaysOff, marchWorkingDays2025)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	employees := []EmployeeRef{{ID: 1, Name: "Clara"}, {ID: 2, Name: "Jorge"}}
	schedules := map[uint]EmployeeSchedule{
		1: {
			"2025-03-10": billableDay(TypeT1, SlotMorning, SlotAfternoon),
			"2025-03-12": billableDay(TypePlan, SlotNight),
		},
		2: {"2025-03-11": billableDay(TypeQ1, SlotMorning)},
	}
	deductions := DeductionTable{Bucket40H: {IR: 10}}
	period := MonthPeriod(2025, time.March)

	first := Aggregate(NewCalendar(), employees, schedules, period, deductions)
	second := Aggregate(NewCalendar(), employees, schedules, period, deductions)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregate is not idempotent over the same snapshot")
	}
}

func TestAggregateYearPeriod(t *testing.T) {
	employees := []EmployeeRef{{ID: 1, Name: "Clara"}}
	schedules := map[uint]EmployeeSchedule{
		1: {
			"2025-03-10": billableDay(TypeT1, SlotMorning),
			"2025-08-12": billableDay(TypeT1, SlotMorning),
		},
	}

	rep := Aggregate(NewCalendar(), employees, schedules, YearPeriod(2025), nil)
	if got := rep.PerEmployee[0].TotalHours; got != 8 {
		t.Errorf("yearly total hours = %d, want 8", got)
	}
}
