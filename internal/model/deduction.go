package model

import "gorm.io/gorm"

// Deduction holds the monthly discounts applied to one payroll bucket
// ("40H" or "20H"). Values are currency amounts, never negative.
type Deduction struct {
	gorm.Model
	Bucket string  `json:"bucket" gorm:"unique;not null"` // "40H" or "20H"
	IR     float64 `json:"ir" gorm:"default:0"`
	INSS   float64 `json:"inss" gorm:"default:0"`
	Unimed float64 `json:"unimed" gorm:"default:0"`
}
