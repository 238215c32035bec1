package entity

// Room is a physical room a doctor is assigned to.
type Room struct {
	ID     int `gorm:"primaryKey;autoIncrement" json:"id"`
	Number int `gorm:"not null;uniqueIndex" json:"number"`
}

func (Room) TableName() string {
	return "rooms"
}
