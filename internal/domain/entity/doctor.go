package entity

type Doctor struct {
	ID               int    `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName         string `gorm:"type:varchar(255);not null;index" json:"full_name"`
	RoomID           int    `gorm:"not null;index" json:"room_id"`
	SpecializationID int    `gorm:"not null;index" json:"specialization_id"`
	SectionID        *int   `gorm:"index" json:"section_id"`

	// Relationships
	Room           Room           `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Specialization Specialization `gorm:"foreignKey:SpecializationID" json:"specialization,omitempty"`
	Section        *Section       `gorm:"foreignKey:SectionID" json:"section,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorRow is a doctor joined with the display values of its references.
// SectionNumber is nil when the doctor has no section.
type DoctorRow struct {
	ID                 int
	FullName           string
	RoomID             int
	RoomNumber         int
	SpecializationID   int
	SpecializationName string
	SectionID          *int
	SectionNumber      *int
}
