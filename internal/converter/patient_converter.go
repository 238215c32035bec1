package converter

import (
	"strconv"

	"hospital-api/internal/delivery/dto"
	"hospital-api/internal/domain/entity"
)

// DateLayout is the wire format of birth dates.
const DateLayout = "2006-01-02"

func PatientRowToListItem(row *entity.PatientRow) dto.PatientListItem {
	return dto.PatientListItem{
		ID:          row.ID,
		FullName:    row.FullName,
		Address:     row.Address,
		BirthDate:   row.BirthDate.Format(DateLayout),
		Gender:      row.Gender,
		SectionName: strconv.Itoa(row.SectionNumber),
	}
}

func PatientRowsToListItems(rows []entity.PatientRow) []dto.PatientListItem {
	items := make([]dto.PatientListItem, len(rows))
	for i := range rows {
		items[i] = PatientRowToListItem(&rows[i])
	}
	return items
}

func PatientRowToResponse(row *entity.PatientRow) *dto.PatientResponse {
	if row == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:            row.ID,
		LastName:      row.LastName,
		FirstName:     row.FirstName,
		MiddleName:    row.MiddleName,
		Address:       row.Address,
		BirthDate:     row.BirthDate.Format(DateLayout),
		Gender:        row.Gender,
		SectionID:     row.SectionID,
		SectionNumber: row.SectionNumber,
	}
}

func PatientToAuditValue(patient *entity.Patient) map[string]interface{} {
	return map[string]interface{}{
		"id":          patient.ID,
		"last_name":   patient.LastName,
		"first_name":  patient.FirstName,
		"middle_name": patient.MiddleName,
		"address":     patient.Address,
		"birth_date":  patient.BirthDate.Format(DateLayout),
		"gender":      patient.Gender,
		"section_id":  patient.SectionID,
	}
}
