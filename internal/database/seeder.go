package database

import (
	"fmt"

	"escala-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll fills an empty database with a usable starting state: one admin
// login, a few employees, both deduction buckets and the municipal extra
// holidays. Existing rows are left alone so the seeder is safe to re-run.
func SeedAll(db *gorm.DB) {
	seedAdmin(db)
	seedEmployees(db)
	seedDeductions(db)
	seedHolidays(db)
}

func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("Failed to hash admin password:", err)
		return
	}
	db.Create(&model.User{
		Username: "admin",
		Name:     "Administrador",
		Role:     "admin",
		Password: string(hashed),
	})
	fmt.Println("Seeded admin user (admin/admin123 — change the password!)")
}

func seedEmployees(db *gorm.DB) {
	var count int64
	db.Model(&model.Employee{}).Count(&count)
	if count > 0 {
		return
	}

	employees := []model.Employee{
		{Name: "Clara Mendes", Role: "Professora", IsActive: true},
		{Name: "Jorge Lima", Role: "Técnico", IsActive: true},
		{Name: "Ana Souza", Role: "Professora", IsActive: true},
	}
	db.Create(&employees)
	fmt.Println("Seeded", len(employees), "employees")
}

func seedDeductions(db *gorm.DB) {
	for _, bucket := range []string{"40H", "20H"} {
		var count int64
		db.Model(&model.Deduction{}).Where("bucket = ?", bucket).Count(&count)
		if count == 0 {
			db.Create(&model.Deduction{Bucket: bucket})
		}
	}
	fmt.Println("Seeded deduction buckets")
}

func seedHolidays(db *gorm.DB) {
	holidays := []model.Holiday{
		{MonthDay: "06-29", Label: "São Pedro"},
		{MonthDay: "12-08", Label: "Nossa Senhora da Conceição"},
	}
	for _, h := range holidays {
		var count int64
		db.Model(&model.Holiday{}).Where("month_day = ?", h.MonthDay).Count(&count)
		if count == 0 {
			db.Create(&h)
		}
	}
	fmt.Println("Seeded municipal holidays")
}
