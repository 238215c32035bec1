package dto

// Request DTOs

type CreatePatientRequest struct {
	LastName   string `json:"last_name" validate:"required,max=100"`
	FirstName  string `json:"first_name" validate:"required,max=100"`
	MiddleName string `json:"middle_name" validate:"max=100"`
	Address    string `json:"address" validate:"max=500"`
	BirthDate  string `json:"birth_date" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	Gender     string `json:"gender" validate:"max=20"`
	SectionID  int    `json:"section_id" validate:"required,gte=1"`
}

type UpdatePatientRequest struct {
	ID         int    `json:"id" validate:"required,gte=1"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	FirstName  string `json:"first_name" validate:"required,max=100"`
	MiddleName string `json:"middle_name" validate:"max=100"`
	Address    string `json:"address" validate:"max=500"`
	BirthDate  string `json:"birth_date" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	Gender     string `json:"gender" validate:"max=20"`
	SectionID  int    `json:"section_id" validate:"required,gte=1"`
}

// Response DTOs

type PatientListItem struct {
	ID          int    `json:"id"`
	FullName    string `json:"full_name"`
	Address     string `json:"address"`
	BirthDate   string `json:"birth_date"`
	Gender      string `json:"gender"`
	SectionName string `json:"section_name"`
}

type PatientResponse struct {
	ID            int    `json:"id"`
	LastName      string `json:"last_name"`
	FirstName     string `json:"first_name"`
	MiddleName    string `json:"middle_name"`
	Address       string `json:"address"`
	BirthDate     string `json:"birth_date"`
	Gender        string `json:"gender"`
	SectionID     int    `json:"section_id"`
	SectionNumber int    `json:"section_number"`
}
