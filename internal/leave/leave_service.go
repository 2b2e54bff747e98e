package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-emprecords/internal/events"
	leaveerrors "go-emprecords/internal/leave/errors"
	"go-emprecords/internal/messaging/kafka"
	"go-emprecords/internal/metrics"
	"go-emprecords/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const uncountedLeaveLabel = "other"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	RecordLeaveEvent(ctx context.Context, req RecordLeaveRequest) (LeaveEventResponse, error)
	GetLeaveSummary(ctx context.Context, employeeID string) (LeaveSummaryResponse, error)
	ListLeaveEvents(ctx context.Context, employeeID string) ([]CalendarEntry, error)
	DeleteLeaveEvent(ctx context.Context, id int64) error
	InitSummary(ctx context.Context, employeeID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

// NewService wires leave tracking. outboxRepo may be nil.
func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

// summaryColumn maps a leave type onto its counter column. Only pl, cl, sl and
// el are counted, case-insensitively.
func summaryColumn(leaveType string) (string, bool) {
	col := strings.ToLower(strings.TrimSpace(leaveType))
	return col, summaryColumns[col]
}

func (s *service) RecordLeaveEvent(ctx context.Context, req RecordLeaveRequest) (LeaveEventResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("record leave event requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("date", req.Date),
	)

	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return LeaveEventResponse{}, leaveerrors.ErrEmployeeIDRequired
	}
	leaveType := strings.TrimSpace(req.LeaveType)
	if leaveType == "" {
		return LeaveEventResponse{}, leaveerrors.ErrLeaveTypeRequired
	}
	date, err := time.Parse(DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return LeaveEventResponse{}, leaveerrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("record leave event begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveEventResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	event := &LeaveEvent{
		EmployeeID: employeeID,
		Date:       date,
		LeaveType:  leaveType,
		Color:      req.Color,
	}
	if err := qtx.InsertEvent(ctx, event); err != nil {
		s.logger.Error("record leave event persist failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveEventResponse{}, err
	}

	column, counted := summaryColumn(leaveType)
	if counted {
		if err := qtx.IncrementSummary(ctx, employeeID, column); err != nil {
			s.logger.Error("record leave event increment summary failed",
				zap.String("request_id", rid),
				zap.String("employee_id", employeeID),
				zap.String("column", column),
				zap.Error(err),
			)
			return LeaveEventResponse{}, err
		}
	}

	if s.outbox != nil {
		evt, err := kafka.NewOutboxEvent(rid, "leave_event", employeeID,
			events.EventTypeLeaveRecorded, events.LeaveRecordedTopic,
			events.LeaveRecordedEvent{
				EventType:    events.EventTypeLeaveRecorded,
				RequestID:    rid,
				LeaveEventID: event.ID,
				EmployeeID:   employeeID,
				Date:         date.Format(DateLayout),
				LeaveType:    leaveType,
				Counted:      counted,
				OccurredAt:   time.Now().UTC(),
			})
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return LeaveEventResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
			s.logger.Error("record leave event outbox persist failed",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
			return LeaveEventResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveEventResponse{}, err
	}

	if counted {
		metrics.RecordLeaveEvent(column)
	} else {
		metrics.RecordLeaveEvent(uncountedLeaveLabel)
	}

	s.logger.Info("record leave event success",
		zap.String("request_id", rid),
		zap.Int64("id", event.ID),
		zap.String("employee_id", employeeID),
		zap.Bool("counted", counted),
	)
	return mapToResponse(*event), nil
}

func (s *service) GetLeaveSummary(ctx context.Context, employeeID string) (LeaveSummaryResponse, error) {
	summary, err := s.repo.FindSummary(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LeaveSummaryResponse{EmployeeID: employeeID}, nil
	}
	if err != nil {
		s.logger.Error("get leave summary failed", zap.String("employee_id", employeeID), zap.Error(err))
		return LeaveSummaryResponse{}, err
	}

	return LeaveSummaryResponse{
		EmployeeID: summary.EmployeeID,
		PL:         summary.PL,
		CL:         summary.CL,
		SL:         summary.SL,
		EL:         summary.EL,
	}, nil
}

func (s *service) ListLeaveEvents(ctx context.Context, employeeID string) ([]CalendarEntry, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, leaveerrors.ErrEmployeeIDRequired
	}

	list, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list leave events failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	entries := make([]CalendarEntry, len(list))
	for i, e := range list {
		entries[i] = CalendarEntry{
			ID:    e.ID,
			Start: e.Date.Format(DateLayout),
			Title: e.LeaveType,
			Color: e.Color,
		}
	}
	return entries, nil
}

// DeleteLeaveEvent removes the event and gives back its counter. Deleting an
// unknown id is not an error.
func (s *service) DeleteLeaveEvent(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete leave event requested", zap.String("request_id", rid), zap.Int64("id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete leave event begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	event, err := qtx.FindEventByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Error("delete leave event lookup failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	rows, err := qtx.DeleteEvent(ctx, id)
	if err != nil {
		s.logger.Error("delete leave event failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	if column, counted := summaryColumn(event.LeaveType); counted && rows > 0 {
		if err := qtx.DecrementSummary(ctx, event.EmployeeID, column); err != nil {
			s.logger.Error("delete leave event decrement summary failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("column", column),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete leave event success",
		zap.String("request_id", rid),
		zap.Int64("id", id),
		zap.String("employee_id", event.EmployeeID),
	)
	return nil
}

func (s *service) InitSummary(ctx context.Context, employeeID string) error {
	if err := s.repo.InitSummary(ctx, employeeID); err != nil {
		s.logger.Error("init leave summary failed", zap.String("employee_id", employeeID), zap.Error(err))
		return err
	}
	s.logger.Debug("init leave summary success", zap.String("employee_id", employeeID))
	return nil
}

func mapToResponse(e LeaveEvent) LeaveEventResponse {
	return LeaveEventResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date.Format(DateLayout),
		LeaveType:  e.LeaveType,
		Color:      e.Color,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
