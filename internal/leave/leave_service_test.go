package leave_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-emprecords/internal/events"
	"go-emprecords/internal/leave"
	leaveerrors "go-emprecords/internal/leave/errors"
	leaveMock "go-emprecords/internal/leave/mock"
	"go-emprecords/internal/messaging/kafka"
	kafkaMock "go-emprecords/internal/messaging/kafka/mock"
	"go-emprecords/internal/metrics"
	"go-emprecords/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service leave.Service
	repo    *leaveMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := leaveMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	t.Cleanup(func() { db.Close() })

	return &serviceDeps{
		sqlMock: sqlMock,
		service: leave.NewService(db, repo, outboxRepo),
		repo:    repo,
		outbox:  outboxRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(v string) *string { return &v }

func TestLeaveService_RecordLeaveEvent(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-leave")

	t.Run("counted leave increments summary in the same tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		before := testutil.ToFloat64(metrics.LeaveEventsRecorded.WithLabelValues("pl"))

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			InsertEvent(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *leave.LeaveEvent) error {
				assert.Equal(t, "EMP-000001", e.EmployeeID)
				assert.Equal(t, "PL", e.LeaveType)
				assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), e.Date)
				e.ID = 31
				return nil
			})
		deps.repo.EXPECT().IncrementSummary(ctx, "EMP-000001", "pl").Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, evt kafka.OutboxEvent) error {
				assert.Equal(t, events.LeaveRecordedTopic, evt.Topic)
				assert.Equal(t, "rid-leave", evt.RequestID)

				var payload events.LeaveRecordedEvent
				assert.NoError(t, json.Unmarshal(evt.Payload, &payload))
				assert.Equal(t, int64(31), payload.LeaveEventID)
				assert.True(t, payload.Counted)
				return nil
			})

		resp, err := deps.service.RecordLeaveEvent(ctx, leave.RecordLeaveRequest{
			EmployeeID: "EMP-000001",
			Date:       "2024-05-06",
			LeaveType:  "PL",
			Color:      strPtr("#ff0000"),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(31), resp.ID)
		assert.Equal(t, "2024-05-06", resp.Date)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.LeaveEventsRecorded.WithLabelValues("pl")))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("other leave types leave counters unchanged", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().InsertEvent(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().IncrementSummary(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.RecordLeaveEvent(ctx, leave.RecordLeaveRequest{
			EmployeeID: "EMP-000001",
			Date:       "2024-05-07",
			LeaveType:  "WFH",
		})

		assert.NoError(t, err)
		assert.Equal(t, "WFH", resp.LeaveType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("summary failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().InsertEvent(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().IncrementSummary(ctx, "EMP-000001", "sl").Return(errors.New("deadlock"))

		_, err := deps.service.RecordLeaveEvent(ctx, leave.RecordLeaveRequest{
			EmployeeID: "EMP-000001",
			Date:       "2024-05-07",
			LeaveType:  "sl",
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid date", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.RecordLeaveEvent(ctx, leave.RecordLeaveRequest{
			EmployeeID: "EMP-000001",
			Date:       "07/05/2024",
			LeaveType:  "cl",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})
}

func TestLeaveService_GetLeaveSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("existing summary", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindSummary(ctx, "E1").Return(&leave.LeaveSummary{EmployeeID: "E1", PL: 2, EL: 1}, nil)

		resp, err := deps.service.GetLeaveSummary(ctx, "E1")

		assert.NoError(t, err)
		assert.Equal(t, leave.LeaveSummaryResponse{EmployeeID: "E1", PL: 2, EL: 1}, resp)
	})

	t.Run("no summary yet returns zeros", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindSummary(ctx, "E2").Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.GetLeaveSummary(ctx, "E2")

		assert.NoError(t, err)
		assert.Equal(t, leave.LeaveSummaryResponse{EmployeeID: "E2"}, resp)
	})

	t.Run("database error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindSummary(ctx, "E3").Return(nil, sql.ErrConnDone)

		_, err := deps.service.GetLeaveSummary(ctx, "E3")

		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestLeaveService_ListLeaveEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("renames fields for the calendar", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ListByEmployee(ctx, "E1").Return([]leave.LeaveEvent{
			{ID: 1, EmployeeID: "E1", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), LeaveType: "pl", Color: strPtr("green")},
			{ID: 2, EmployeeID: "E1", Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), LeaveType: "Holiday"},
		}, nil)

		resp, err := deps.service.ListLeaveEvents(ctx, "E1")

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, leave.CalendarEntry{ID: 1, Start: "2024-01-02", Title: "pl", Color: strPtr("green")}, resp[0])
		assert.Equal(t, "Holiday", resp[1].Title)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ListByEmployee(ctx, "E9").Return(nil, nil)

		resp, err := deps.service.ListLeaveEvents(ctx, "E9")

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("missing employee id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.ListLeaveEvents(ctx, "")

		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeIDRequired)
	})
}

func TestLeaveService_DeleteLeaveEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements the matching counter", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindEventByID(ctx, int64(5)).Return(&leave.LeaveEvent{ID: 5, EmployeeID: "E1", LeaveType: "CL"}, nil)
		deps.repo.EXPECT().DeleteEvent(ctx, int64(5)).Return(int64(1), nil)
		deps.repo.EXPECT().DecrementSummary(ctx, "E1", "cl").Return(nil)

		assert.NoError(t, deps.service.DeleteLeaveEvent(ctx, 5))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindEventByID(ctx, int64(6)).Return(nil, gorm.ErrRecordNotFound)

		assert.NoError(t, deps.service.DeleteLeaveEvent(ctx, 6))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_InitSummary(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	deps.repo.EXPECT().InitSummary(ctx, "EMP-000002").Return(nil)

	assert.NoError(t, deps.service.InitSummary(ctx, "EMP-000002"))
}
