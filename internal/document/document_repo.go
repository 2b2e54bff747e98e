package document

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, employeeID string, offerLetterURL, salarySlipURL *string) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeDocument, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert overwrites the provided URLs and keeps the stored value for nil ones.
func (r *repository) Upsert(ctx context.Context, employeeID string, offerLetterURL, salarySlipURL *string) error {
	return r.db.WithContext(ctx).Exec(
		`INSERT INTO employee_documents (employee_id, offer_letter_url, salary_slip_url, updated_at)
		VALUES (?, ?, ?, NOW())
		ON CONFLICT (employee_id) DO UPDATE SET
			offer_letter_url = COALESCE(EXCLUDED.offer_letter_url, employee_documents.offer_letter_url),
			salary_slip_url = COALESCE(EXCLUDED.salary_slip_url, employee_documents.salary_slip_url),
			updated_at = NOW()`,
		employeeID, offerLetterURL, salarySlipURL,
	).Error
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeDocument, error) {
	var doc EmployeeDocument
	if err := r.db.WithContext(ctx).First(&doc, "employee_id = ?", employeeID).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}
