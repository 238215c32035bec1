package entity

import "time"

type Patient struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName   string    `gorm:"type:varchar(100);not null;index" json:"last_name"`
	FirstName  string    `gorm:"type:varchar(100);not null" json:"first_name"`
	MiddleName string    `gorm:"type:varchar(100);not null" json:"middle_name"`
	Address    string    `gorm:"type:text;not null" json:"address"`
	BirthDate  time.Time `gorm:"type:date;not null;index" json:"birth_date"`
	Gender     string    `gorm:"type:varchar(20);not null" json:"gender"`
	SectionID  int       `gorm:"not null;index" json:"section_id"`

	// Relationships
	Section Section `gorm:"foreignKey:SectionID" json:"section,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// PatientRow is a patient joined with its section number. FullName is
// computed by the query as "last first middle".
type PatientRow struct {
	ID            int
	FullName      string
	LastName      string
	FirstName     string
	MiddleName    string
	Address       string
	BirthDate     time.Time
	Gender        string
	SectionID     int
	SectionNumber int
}
