package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"column:username;unique;not null"`
	Name     string `json:"name"`
	Role     string `json:"role"` // "admin" or "staff"
	Password string `json:"-"`

	// Optional link to the Employee this login belongs to. Admins may not
	// have one.
	EmployeeID *uint `json:"employee_id"`
}
