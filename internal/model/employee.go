package model

import "gorm.io/gorm"

type Employee struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Role      string `json:"role"` // e.g. "Professor", "Técnico"
	AvatarURL string `json:"avatar_url"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
}
