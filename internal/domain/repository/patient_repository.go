package repository

import (
	"hospital-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	FindRowByID(db *gorm.DB, id int) (*entity.PatientRow, error)
	FindPage(db *gorm.DB, query entity.ListQuery) ([]entity.PatientRow, int64, error)
	Update(db *gorm.DB, patient *entity.Patient) (int64, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
