package repository

import (
	"hospital-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindRowByID(db *gorm.DB, id int) (*entity.DoctorRow, error)
	FindPage(db *gorm.DB, query entity.ListQuery) ([]entity.DoctorRow, int64, error)
	Update(db *gorm.DB, doctor *entity.Doctor) (int64, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
