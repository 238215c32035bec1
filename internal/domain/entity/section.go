package entity

// Section is a hospital ward. Patients always belong to one, doctors optionally.
type Section struct {
	ID     int `gorm:"primaryKey;autoIncrement" json:"id"`
	Number int `gorm:"not null;uniqueIndex" json:"number"`
}

func (Section) TableName() string {
	return "sections"
}
