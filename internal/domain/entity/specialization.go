package entity

type Specialization struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
}

func (Specialization) TableName() string {
	return "specializations"
}
