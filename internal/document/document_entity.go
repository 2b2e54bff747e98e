package document

import "time"

// EmployeeDocument holds at most one row per employee.
type EmployeeDocument struct {
	ID             int64  `gorm:"primaryKey"`
	EmployeeID     string `gorm:"uniqueIndex;not null"`
	OfferLetterURL *string
	SalarySlipURL  *string
	UpdatedAt      time.Time
}

func (EmployeeDocument) TableName() string {
	return "employee_documents"
}
