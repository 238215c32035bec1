package repository

import (
	"errors"

	"hospital-api/internal/domain/entity"
	domainRepo "hospital-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const patientRowColumns = `patients.id,
	TRIM(CONCAT_WS(' ', patients.last_name, patients.first_name, patients.middle_name)) AS full_name,
	patients.last_name,
	patients.first_name,
	patients.middle_name,
	patients.address,
	patients.birth_date,
	patients.gender,
	patients.section_id,
	sections.number AS section_number`

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) joined(db *gorm.DB) *gorm.DB {
	return db.Table("patients").
		Select(patientRowColumns).
		Joins("JOIN sections ON sections.id = patients.section_id")
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit(clause.Associations).Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindRowByID(db *gorm.DB, id int) (*entity.PatientRow, error) {
	var row entity.PatientRow
	err := r.joined(db).Where("patients.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// FindPage returns one sorted page of patients and the total patient count.
func (r *patientRepository) FindPage(db *gorm.DB, query entity.ListQuery) ([]entity.PatientRow, int64, error) {
	var total int64
	if err := db.Model(&entity.Patient{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if query.PastEnd(total) {
		return []entity.PatientRow{}, total, nil
	}

	var rows []entity.PatientRow
	err := r.joined(db).
		Order(patientSortColumn(query.SortBy) + " ASC").
		Order("patients.id ASC").
		Limit(query.PageSize).
		Offset(query.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// Update overwrites every editable column of an existing patient and reports
// the affected row count. It never inserts.
func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) (int64, error) {
	result := db.Model(patient).Select("*").Omit("id", clause.Associations).Updates(patient)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
