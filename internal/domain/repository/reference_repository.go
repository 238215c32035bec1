package repository

import (
	"hospital-api/internal/domain/entity"

	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(db *gorm.DB, room *entity.Room) error
	FindByID(db *gorm.DB, id int) (*entity.Room, error)
	FindAll(db *gorm.DB) ([]entity.Room, error)
}

type SpecializationRepository interface {
	Create(db *gorm.DB, specialization *entity.Specialization) error
	FindByID(db *gorm.DB, id int) (*entity.Specialization, error)
	FindAll(db *gorm.DB) ([]entity.Specialization, error)
}

type SectionRepository interface {
	Create(db *gorm.DB, section *entity.Section) error
	FindByID(db *gorm.DB, id int) (*entity.Section, error)
	FindAll(db *gorm.DB) ([]entity.Section, error)
}
