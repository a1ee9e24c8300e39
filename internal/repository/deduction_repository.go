package repository

import (
	"escala-backend/internal/model"

	"gorm.io/gorm"
)

type DeductionRepository interface {
	GetAll() ([]model.Deduction, error)
	GetByBucket(bucket string) (*model.Deduction, error)
	Upsert(deduction *model.Deduction) error
}

type deductionRepository struct {
	db *gorm.DB
}

func NewDeductionRepository(db *gorm.DB) DeductionRepository {
	return &deductionRepository{db}
}

func (r *deductionRepository) GetAll() ([]model.Deduction, error) {
	var deductions []model.Deduction
	err := r.db.Order("bucket asc").Find(&deductions).Error
	return deductions, err
}

func (r *deductionRepository) GetByBucket(bucket string) (*model.Deduction, error) {
	var deduction model.Deduction
	err := r.db.Where("bucket = ?", bucket).Limit(1).Find(&deduction).Error
	if err != nil {
		return nil, err
	}
	if deduction.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &deduction, nil
}

func (r *deductionRepository) Upsert(deduction *model.Deduction) error {
	existing, err := r.GetByBucket(deduction.Bucket)
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(deduction).Error
	}
	if err != nil {
		return err
	}

	return r.db.Model(existing).Updates(map[string]interface{}{
		"ir":     deduction.IR,
		"inss":   deduction.INSS,
		"unimed": deduction.Unimed,
	}).Error
}
