package employee

import (
	"time"
)

// Employee.PL..EL are the allotted yearly entitlements. Consumed days live in
// leave_summary.
type Employee struct {
	ID           int64      `gorm:"primaryKey"`
	EmployeeID   string     `gorm:"column:employee_id"`
	Name         string     `gorm:"column:name"`
	Designation  *string    `gorm:"column:designation"`
	DOB          *time.Time `gorm:"column:dob;type:date"`
	JoiningDate  *time.Time `gorm:"column:joining_date;type:date"`
	PayrollName  *string    `gorm:"column:payroll_name"`
	Team         *string    `gorm:"column:team"`
	Grade        *string    `gorm:"column:grade"`
	ProfileImage *string    `gorm:"column:profile_image"`
	Password     *string    `gorm:"column:password"`
	PL           int        `gorm:"column:pl"`
	CL           int        `gorm:"column:cl"`
	SL           int        `gorm:"column:sl"`
	EL           int        `gorm:"column:el"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string { return "employees" }
