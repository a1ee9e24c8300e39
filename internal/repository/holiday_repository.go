package repository

import (
	"escala-backend/internal/model"

	"gorm.io/gorm"
)

type HolidayRepository interface {
	GetAll() ([]model.Holiday, error)
	GetByID(id uint) (*model.Holiday, error)
	Create(holiday *model.Holiday) error
	Update(holiday *model.Holiday) error
	Delete(id uint) error
}

type holidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) HolidayRepository {
	return &holidayRepository{db}
}

func (r *holidayRepository) GetAll() ([]model.Holiday, error) {
	var holidays []model.Holiday
	err := r.db.Order("month_day asc").Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepository) GetByID(id uint) (*model.Holiday, error) {
	var holiday model.Holiday
	err := r.db.First(&holiday, id).Error
	return &holiday, err
}

func (r *holidayRepository) Create(holiday *model.Holiday) error {
	return r.db.Create(holiday).Error
}

func (r *holidayRepository) Update(holiday *model.Holiday) error {
	return r.db.Save(holiday).Error
}

func (r *holidayRepository) Delete(id uint) error {
	return r.db.Delete(&model.Holiday{}, id).Error
}
