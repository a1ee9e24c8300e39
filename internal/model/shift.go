package model

import "gorm.io/gorm"

// Shift is one employee-day on the calendar. The three daily slots hang off
// it as SlotAssignment rows, at most one per slot name.
type Shift struct {
	gorm.Model
	EmployeeID uint   `json:"employee_id" gorm:"uniqueIndex:idx_employee_date;not null"`
	Date       string `json:"date" gorm:"uniqueIndex:idx_employee_date;not null"` // Format YYYY-MM-DD
	Type       string `json:"type"`                                               // T1/Q1/PLAN/FINAL/OFF
	CourseName string `json:"course_name"`                                        // legacy single-label duplicate of slot detail

	Slots []SlotAssignment `json:"slots" gorm:"foreignKey:ShiftID"`
}

type SlotAssignment struct {
	gorm.Model
	ShiftID     uint   `json:"shift_id" gorm:"uniqueIndex:idx_shift_slot;not null"`
	Slot        string `json:"slot" gorm:"uniqueIndex:idx_shift_slot;not null"` // MORNING/AFTERNOON/NIGHT
	CourseName  string `json:"course_name"`
	StartDate   string `json:"start_date"` // first day of the booking this slot came from
	EndDate     string `json:"end_date"`   // last day of the booking
	IsCancelled bool   `json:"is_cancelled" gorm:"default:false"`
}
