package repository

import (
	"errors"

	"hospital-api/internal/domain/entity"
	domainRepo "hospital-api/internal/domain/repository"

	"gorm.io/gorm"
)

type roomRepository struct{}

func NewRoomRepository() domainRepo.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) Create(db *gorm.DB, room *entity.Room) error {
	return db.Create(room).Error
}

func (r *roomRepository) FindByID(db *gorm.DB, id int) (*entity.Room, error) {
	var room entity.Room
	err := db.Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(db *gorm.DB) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Order("number ASC, id ASC").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

type specializationRepository struct{}

func NewSpecializationRepository() domainRepo.SpecializationRepository {
	return &specializationRepository{}
}

func (r *specializationRepository) Create(db *gorm.DB, specialization *entity.Specialization) error {
	return db.Create(specialization).Error
}

func (r *specializationRepository) FindByID(db *gorm.DB, id int) (*entity.Specialization, error) {
	var specialization entity.Specialization
	err := db.Where("id = ?", id).First(&specialization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialization, nil
}

func (r *specializationRepository) FindAll(db *gorm.DB) ([]entity.Specialization, error) {
	var specializations []entity.Specialization
	err := db.Order("name ASC, id ASC").Find(&specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}

type sectionRepository struct{}

func NewSectionRepository() domainRepo.SectionRepository {
	return &sectionRepository{}
}

func (r *sectionRepository) Create(db *gorm.DB, section *entity.Section) error {
	return db.Create(section).Error
}

func (r *sectionRepository) FindByID(db *gorm.DB, id int) (*entity.Section, error) {
	var section entity.Section
	err := db.Where("id = ?", id).First(&section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) FindAll(db *gorm.DB) ([]entity.Section, error) {
	var sections []entity.Section
	err := db.Order("number ASC, id ASC").Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}
