package usecase

import (
	"testing"

	"escala-backend/internal/model"
	"escala-backend/internal/schedule"
)

func TestShiftRowConversion(t *testing.T) {
	row := model.Shift{
		EmployeeID: 3,
		Date:       "2025-03-10",
		Type:       "T1",
		CourseName: "Solda",
		Slots: []model.SlotAssignment{
			{Slot: "MORNING", CourseName: "Solda", StartDate: "2025-03-10", EndDate: "2025-03-12"},
			{Slot: "NIGHT", IsCancelled: true},
		},
	}

	day := ShiftRowToDay(row)
	if day.Type != schedule.TypeT1 || day.CourseName != "Solda" {
		t.Errorf("day header = %s/%q", day.Type, day.CourseName)
	}
	if !day.HasSlot(schedule.SlotMorning) || day.HasSlot(schedule.SlotAfternoon) {
		t.Errorf("slot set wrong: %v", day.Slots)
	}
	if !day.Slots[schedule.SlotNight].IsCancelled {
		t.Errorf("cancellation flag lost")
	}

	back := DayToShiftRow(3, "2025-03-10", day)
	if back.Type != "T1" || len(back.Slots) != 2 {
		t.Errorf("round trip produced %s with %d slots", back.Type, len(back.Slots))
	}
	if back.Slots[0].Slot != "MORNING" {
		t.Errorf("slots not in day order: %v", back.Slots)
	}
}

func TestDayToShiftRowSkipsInactiveSlots(t *testing.T) {
	day := schedule.DayShift{Type: schedule.TypeOff}
	row := DayToShiftRow(1, "2025-03-10", day)
	if len(row.Slots) != 0 {
		t.Errorf("OFF day produced slot rows: %v", row.Slots)
	}
}
