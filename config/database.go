package config

import (
	"fmt"

	"escala-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/escala_db?charset=utf8mb4&parseTime=True&loc=Local")

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database!")
	}

	fmt.Println("Database connection established!")

	// Auto Migration: creates tables from the structs in internal/model
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.Employee{})
	db.AutoMigrate(&model.Shift{})
	db.AutoMigrate(&model.SlotAssignment{})
	db.AutoMigrate(&model.Deduction{})
	db.AutoMigrate(&model.Holiday{})

	DB = db
}
