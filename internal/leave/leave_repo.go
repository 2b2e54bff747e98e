package leave

import (
	"context"
	"database/sql"
	"fmt"

	"go-emprecords/internal/shared/connection"

	"gorm.io/gorm"
)

// summaryColumns are the only columns the counter statements may touch.
var summaryColumns = map[string]bool{"pl": true, "cl": true, "sl": true, "el": true}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	InsertEvent(ctx context.Context, event *LeaveEvent) error
	FindEventByID(ctx context.Context, id int64) (*LeaveEvent, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveEvent, error)
	DeleteEvent(ctx context.Context, id int64) (int64, error)
	FindSummary(ctx context.Context, employeeID string) (*LeaveSummary, error)
	InitSummary(ctx context.Context, employeeID string) error
	IncrementSummary(ctx context.Context, employeeID, column string) error
	DecrementSummary(ctx context.Context, employeeID, column string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) InsertEvent(ctx context.Context, event *LeaveEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) FindEventByID(ctx context.Context, id int64) (*LeaveEvent, error) {
	var event LeaveEvent
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]LeaveEvent, error) {
	var events []LeaveEvent
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date ASC, id ASC").
		Find(&events).Error
	return events, err
}

func (r *repository) DeleteEvent(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&LeaveEvent{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) FindSummary(ctx context.Context, employeeID string) (*LeaveSummary, error) {
	var summary LeaveSummary
	if err := r.db.WithContext(ctx).First(&summary, "employee_id = ?", employeeID).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *repository) InitSummary(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).Exec(
		`INSERT INTO leave_summary (employee_id) VALUES (?) ON CONFLICT (employee_id) DO NOTHING`,
		employeeID,
	).Error
}

func (r *repository) IncrementSummary(ctx context.Context, employeeID, column string) error {
	if !summaryColumns[column] {
		return fmt.Errorf("unknown leave summary column %q", column)
	}
	query := fmt.Sprintf(
		`INSERT INTO leave_summary (employee_id, %[1]s) VALUES (?, 1)
		ON CONFLICT (employee_id) DO UPDATE SET %[1]s = leave_summary.%[1]s + 1, updated_at = NOW()`,
		column,
	)
	return r.db.WithContext(ctx).Exec(query, employeeID).Error
}

func (r *repository) DecrementSummary(ctx context.Context, employeeID, column string) error {
	if !summaryColumns[column] {
		return fmt.Errorf("unknown leave summary column %q", column)
	}
	query := fmt.Sprintf(
		`UPDATE leave_summary SET %[1]s = GREATEST(%[1]s - 1, 0), updated_at = NOW() WHERE employee_id = ?`,
		column,
	)
	return r.db.WithContext(ctx).Exec(query, employeeID).Error
}
