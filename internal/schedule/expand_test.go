package schedule

import (
	"testing"
)

func datesOf(e Expansion) []string {
	return e.DateStrings()
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestExpandSingleDay(t *testing.T) {
	cal := NewCalendar()

	// totalHours <= 0 is a single-day booking, even on a weekend: the
	// caller owns start-date validation.
	for _, h := range []int{0, -4} {
		got := ExpandWorkingDates(cal, mustDate(t, "2025-03-08"), h, DefaultMaxScanDays)
		if !equalStrings(datesOf(got), []string{"2025-03-08"}) {
			t.Errorf("ExpandWorkingDates(sat, %d) = %v, want just the start date", h, datesOf(got))
		}
	}

	// One slot's worth of hours on a working day is also just the start.
	got := ExpandWorkingDates(cal, mustDate(t, "2025-03-10"), 4, DefaultMaxScanDays)
	if !equalStrings(datesOf(got), []string{"2025-03-10"}) {
		t.Errorf("ExpandWorkingDates(mon, 4) = %v, want [2025-03-10]", datesOf(got))
	}
	if got.Truncated {
		t.Errorf("4h expansion should not be truncated")
	}
}

func TestExpandSkipsWeekend(t *testing.T) {
	cal := NewCalendar()

	// 8h from a Friday: exactly two working dates, jumping the weekend.
	got := ExpandWorkingDates(cal, mustDate(t, "2025-03-14"), 8, DefaultMaxScanDays)
	want := []string{"2025-03-14", "2025-03-17"}
	if !equalStrings(datesOf(got), want) {
		t.Errorf("ExpandWorkingDates(fri, 8) = %v, want %v", datesOf(got), want)
	}
}

func TestExpandSkipsHoliday(t *testing.T) {
	cal := NewCalendar()

	// 2025-04-18 is a Friday; the 21st (Monday) is Tiradentes.
	got := ExpandWorkingDates(cal, mustDate(t, "2025-04-18"), 8, DefaultMaxScanDays)
	want := []string{"2025-04-18", "2025-04-22"}
	if !equalStrings(datesOf(got), want) {
		t.Errorf("ExpandWorkingDates over Tiradentes = %v, want %v", datesOf(got), want)
	}
}

func TestExpandThreeDays(t *testing.T) {
	cal := NewCalendar()

	// 12h booking starting Monday 2025-03-10 fills three straight days.
	got := ExpandWorkingDates(cal, mustDate(t, "2025-03-10"), 12, DefaultMaxScanDays)
	want := []string{"2025-03-10", "2025-03-11", "2025-03-12"}
	if !equalStrings(datesOf(got), want) {
		t.Errorf("ExpandWorkingDates(mon, 12) = %v, want %v", datesOf(got), want)
	}
}

func TestExpandCeilsPartialSlot(t *testing.T) {
	cal := NewCalendar()

	// 10h needs ceil(10/4) = 3 days.
	got := ExpandWorkingDates(cal, mustDate(t, "2025-03-10"), 10, DefaultMaxScanDays)
	if len(got.Dates) != 3 {
		t.Errorf("ExpandWorkingDates(mon, 10) returned %d dates, want 3", len(got.Dates))
	}
}

func TestExpandTruncatesAtScanBound(t *testing.T) {
	cal := NewCalendar()

	// 16h needs 4 days but only 3 calendar days are scanned: silent
	// truncation, reported through the flag.
	got := ExpandWorkingDates(cal, mustDate(t, "2025-03-10"), 16, 3)
	want := []string{"2025-03-10", "2025-03-11", "2025-03-12"}
	if !equalStrings(datesOf(got), want) {
		t.Errorf("truncated expansion = %v, want %v", datesOf(got), want)
	}
	if !got.Truncated {
		t.Errorf("expansion hitting the scan bound must report Truncated")
	}
}

func TestExpandOutputStrictlyIncreasingAndWorking(t *testing.T) {
	cal := NewCalendar()

	got := ExpandWorkingDates(cal, mustDate(t, "2025-04-16"), 40, DefaultMaxScanDays)
	if len(got.Dates) != 10 {
		t.Fatalf("40h expansion returned %d dates, want 10", len(got.Dates))
	}
	for i, d := range got.Dates {
		if cal.IsNonWorkingDay(d) {
			t.Errorf("expansion contains non-working day %s", d.Format(DateLayout))
		}
		if i > 0 && !got.Dates[i-1].Before(d) {
			t.Errorf("expansion not strictly increasing at index %d", i)
		}
	}
}
