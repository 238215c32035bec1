package repository

import (
	"errors"

	"hospital-api/internal/domain/entity"
	domainRepo "hospital-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const doctorRowColumns = `doctors.id,
	doctors.full_name,
	doctors.room_id,
	rooms.number AS room_number,
	doctors.specialization_id,
	specializations.name AS specialization_name,
	doctors.section_id,
	sections.number AS section_number`

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

// joined resolves every reference of a doctor in one query. The section is
// optional, so it is left-joined.
func (r *doctorRepository) joined(db *gorm.DB) *gorm.DB {
	return db.Table("doctors").
		Select(doctorRowColumns).
		Joins("JOIN rooms ON rooms.id = doctors.room_id").
		Joins("JOIN specializations ON specializations.id = doctors.specialization_id").
		Joins("LEFT JOIN sections ON sections.id = doctors.section_id")
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit(clause.Associations).Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindRowByID(db *gorm.DB, id int) (*entity.DoctorRow, error) {
	var row entity.DoctorRow
	err := r.joined(db).Where("doctors.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// FindPage returns one sorted page of doctors and the total doctor count.
// Rows with equal sort keys are ordered by id so pages never overlap.
func (r *doctorRepository) FindPage(db *gorm.DB, query entity.ListQuery) ([]entity.DoctorRow, int64, error) {
	var total int64
	if err := db.Model(&entity.Doctor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if query.PastEnd(total) {
		return []entity.DoctorRow{}, total, nil
	}

	var rows []entity.DoctorRow
	err := r.joined(db).
		Order(doctorSortColumn(query.SortBy) + " ASC").
		Order("doctors.id ASC").
		Limit(query.PageSize).
		Offset(query.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// Update overwrites every editable column of an existing doctor and reports
// the affected row count. It never inserts.
func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) (int64, error) {
	result := db.Model(doctor).Select("*").Omit("id", clause.Associations).Updates(doctor)
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
