package converter

import (
	"strconv"

	"hospital-api/internal/delivery/dto"
	"hospital-api/internal/domain/entity"
)

// MissingSection is displayed for doctors without a section.
const MissingSection = "N/A"

// DoctorRowToListItem flattens a joined doctor row into its list display record.
func DoctorRowToListItem(row *entity.DoctorRow) dto.DoctorListItem {
	sectionNumber := MissingSection
	if row.SectionNumber != nil {
		sectionNumber = strconv.Itoa(*row.SectionNumber)
	}

	return dto.DoctorListItem{
		ID:                 row.ID,
		FullName:           row.FullName,
		RoomNumber:         strconv.Itoa(row.RoomNumber),
		SpecializationName: row.SpecializationName,
		SectionNumber:      sectionNumber,
	}
}

// DoctorRowsToListItems never returns nil so empty pages encode as [].
func DoctorRowsToListItems(rows []entity.DoctorRow) []dto.DoctorListItem {
	items := make([]dto.DoctorListItem, len(rows))
	for i := range rows {
		items[i] = DoctorRowToListItem(&rows[i])
	}
	return items
}

// DoctorRowToResponse converts a joined doctor row to DoctorResponse DTO
func DoctorRowToResponse(row *entity.DoctorRow) *dto.DoctorResponse {
	if row == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                 row.ID,
		FullName:           row.FullName,
		RoomID:             row.RoomID,
		RoomNumber:         row.RoomNumber,
		SpecializationID:   row.SpecializationID,
		SpecializationName: row.SpecializationName,
		SectionID:          row.SectionID,
		SectionNumber:      row.SectionNumber,
	}
}

// DoctorToAuditValue is the snapshot stored in audit metadata.
func DoctorToAuditValue(doctor *entity.Doctor) map[string]interface{} {
	return map[string]interface{}{
		"id":                doctor.ID,
		"full_name":         doctor.FullName,
		"room_id":           doctor.RoomID,
		"specialization_id": doctor.SpecializationID,
		"section_id":        doctor.SectionID,
	}
}
