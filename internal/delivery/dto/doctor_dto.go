package dto

// Request DTOs

type CreateDoctorRequest struct {
	FullName         string `json:"full_name" validate:"required,min=2,max=255"`
	RoomID           int    `json:"room_id" validate:"required,gte=1"`
	SpecializationID int    `json:"specialization_id" validate:"required,gte=1"`
	SectionID        *int   `json:"section_id" validate:"omitempty,gte=1"`
}

// UpdateDoctorRequest replaces every editable field. ID must match the path.
type UpdateDoctorRequest struct {
	ID               int    `json:"id" validate:"required,gte=1"`
	FullName         string `json:"full_name" validate:"required,min=2,max=255"`
	RoomID           int    `json:"room_id" validate:"required,gte=1"`
	SpecializationID int    `json:"specialization_id" validate:"required,gte=1"`
	SectionID        *int   `json:"section_id" validate:"omitempty,gte=1"`
}

// Response DTOs

// DoctorListItem is the flat display record of the doctor list.
type DoctorListItem struct {
	ID                 int    `json:"id"`
	FullName           string `json:"full_name"`
	RoomNumber         string `json:"room_number"`
	SpecializationName string `json:"specialization_name"`
	SectionNumber      string `json:"section_number"`
}

// DoctorResponse carries the raw reference ids for editing next to their
// display values.
type DoctorResponse struct {
	ID                 int    `json:"id"`
	FullName           string `json:"full_name"`
	RoomID             int    `json:"room_id"`
	RoomNumber         int    `json:"room_number"`
	SpecializationID   int    `json:"specialization_id"`
	SpecializationName string `json:"specialization_name"`
	SectionID          *int   `json:"section_id"`
	SectionNumber      *int   `json:"section_number"`
}
