package model

import "gorm.io/gorm"

// Holiday is an admin-managed extra holiday on top of the fixed national
// list. Dates are year-independent (MM-DD), matching the fixed list.
type Holiday struct {
	gorm.Model
	MonthDay string `json:"month_day" gorm:"unique;not null"` // Format MM-DD
	Label    string `json:"label"`
}
