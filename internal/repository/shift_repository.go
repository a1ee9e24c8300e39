package repository

import (
	"fmt"

	"escala-backend/internal/model"

	"gorm.io/gorm"
)

type ShiftRepository interface {
	GetByEmployeeAndDate(employeeID uint, date string) (*model.Shift, error)
	GetByEmployee(employeeID uint) ([]model.Shift, error)
	GetByEmployeeAndMonth(employeeID uint, year, month int) ([]model.Shift, error)
	GetByMonth(year, month int) ([]model.Shift, error)
	GetByYear(year int) ([]model.Shift, error)
	UpsertDays(employeeID uint, days []model.Shift) error
	ReplaceMonth(year, month int, byEmployee map[uint][]model.Shift) error
	CancelSlot(employeeID uint, date, slot string) error
	DeleteByEmployee(employeeID uint) error
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db}
}

func monthPattern(year, month int) string {
	return fmt.Sprintf("%04d-%02d%%", year, month)
}

func (r *shiftRepository) GetByEmployeeAndDate(employeeID uint, date string) (*model.Shift, error) {
	var shift model.Shift
	// Find + Limit(1) keeps GORM from logging "record not found"
	err := r.db.Preload("Slots").Where("employee_id = ? AND date = ?", employeeID, date).Limit(1).Find(&shift).Error
	if err != nil {
		return nil, err
	}
	if shift.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &shift, nil
}

func (r *shiftRepository) GetByEmployee(employeeID uint) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Preload("Slots").Where("employee_id = ?", employeeID).Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) GetByEmployeeAndMonth(employeeID uint, year, month int) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Preload("Slots").
		Where("employee_id = ? AND date LIKE ?", employeeID, monthPattern(year, month)).
		Order("date asc").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) GetByMonth(year, month int) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Preload("Slots").
		Where("date LIKE ?", monthPattern(year, month)).
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) GetByYear(year int) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Preload("Slots").
		Where("date LIKE ?", fmt.Sprintf("%04d-%%", year)).
		Find(&shifts).Error
	return shifts, err
}

// UpsertDays writes the fully materialized day records an edit produced.
// Each day's slot set replaces whatever was stored, in a single transaction
// so a half-applied multi-day booking can never be observed.
func (r *shiftRepository) UpsertDays(employeeID uint, days []model.Shift) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, day := range days {
			var existing model.Shift
			if err := tx.Where("employee_id = ? AND date = ?", employeeID, day.Date).Limit(1).Find(&existing).Error; err != nil {
				return err
			}

			if existing.ID == 0 {
				day.EmployeeID = employeeID
				if err := tx.Create(&day).Error; err != nil {
					return err
				}
				continue
			}

			if err := tx.Model(&existing).Updates(map[string]interface{}{
				"type":        day.Type,
				"course_name": day.CourseName,
			}).Error; err != nil {
				return err
			}

			// The incoming slot set is the whole truth for this date.
			if err := tx.Unscoped().Where("shift_id = ?", existing.ID).Delete(&model.SlotAssignment{}).Error; err != nil {
				return err
			}
			for _, slot := range day.Slots {
				slot.ID = 0
				slot.ShiftID = existing.ID
				if err := tx.Create(&slot).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ReplaceMonth swaps out a whole month of schedule rows for the given
// employees, all-or-nothing. Used when applying an accepted suggestion.
func (r *shiftRepository) ReplaceMonth(year, month int, byEmployee map[uint][]model.Shift) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for employeeID, days := range byEmployee {
			var old []model.Shift
			if err := tx.Where("employee_id = ? AND date LIKE ?", employeeID, monthPattern(year, month)).Find(&old).Error; err != nil {
				return err
			}
			for _, s := range old {
				if err := tx.Unscoped().Where("shift_id = ?", s.ID).Delete(&model.SlotAssignment{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Unscoped().
				Where("employee_id = ? AND date LIKE ?", employeeID, monthPattern(year, month)).
				Delete(&model.Shift{}).Error; err != nil {
				return err
			}

			for _, day := range days {
				day.EmployeeID = employeeID
				if err := tx.Create(&day).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *shiftRepository) CancelSlot(employeeID uint, date, slot string) error {
	shift, err := r.GetByEmployeeAndDate(employeeID, date)
	if err != nil {
		return err
	}
	result := r.db.Model(&model.SlotAssignment{}).
		Where("shift_id = ? AND slot = ?", shift.ID, slot).
		Update("is_cancelled", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByEmployee removes every schedule row for an employee. Hard delete:
// a purged schedule must not linger behind soft-delete flags.
func (r *shiftRepository) DeleteByEmployee(employeeID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var shifts []model.Shift
		if err := tx.Where("employee_id = ?", employeeID).Find(&shifts).Error; err != nil {
			return err
		}
		for _, s := range shifts {
			if err := tx.Unscoped().Where("shift_id = ?", s.ID).Delete(&model.SlotAssignment{}).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Where("employee_id = ?", employeeID).Delete(&model.Shift{}).Error
	})
}
