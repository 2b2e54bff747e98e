package leave

import "time"

type LeaveEvent struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID string    `gorm:"not null;index"`
	Date       time.Time `gorm:"type:date;not null"`
	LeaveType  string    `gorm:"not null"`
	Color      *string
	CreatedAt  time.Time
}

func (LeaveEvent) TableName() string {
	return "leave_events"
}

// LeaveSummary caches per-type counts of an employee's leave events.
type LeaveSummary struct {
	EmployeeID string `gorm:"primaryKey"`
	PL         int    `gorm:"column:pl"`
	CL         int    `gorm:"column:cl"`
	SL         int    `gorm:"column:sl"`
	EL         int    `gorm:"column:el"`
	UpdatedAt  time.Time
}

func (LeaveSummary) TableName() string {
	return "leave_summary"
}
