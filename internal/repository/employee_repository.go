package repository

import (
	"escala-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	GetAll(search string) ([]model.Employee, error)
	GetActive() ([]model.Employee, error)
	FindByID(id uint) (*model.Employee, error)
	Create(employee *model.Employee) error
	Update(employee *model.Employee) error
	Deactivate(id uint) error
	Count() (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) GetAll(search string) ([]model.Employee, error) {
	var employees []model.Employee
	query := r.db.Order("name asc")

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR role LIKE ?", searchPattern, searchPattern)
	}

	err := query.Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetActive() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Where("is_active = ?", true).Order("name asc").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) FindByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.First(&employee, id).Error
	return &employee, err
}

func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

// Deactivate is the logical delete: the row stays, schedule rows are the
// shift repository's problem.
func (r *employeeRepository) Deactivate(id uint) error {
	return r.db.Model(&model.Employee{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *employeeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Employee{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
