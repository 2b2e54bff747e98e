package calendar

import "time"

type Event struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"not null"`
	Date        time.Time `gorm:"type:date;not null"`
	Description *string
	EventType   *string
	CreatedAt   time.Time
}

func (Event) TableName() string {
	return "events"
}
