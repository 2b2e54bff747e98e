package calendar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-emprecords/internal/calendar"
	calendarerrors "go-emprecords/internal/calendar/errors"
	calendarMock "go-emprecords/internal/calendar/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalendarService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := calendarMock.NewMockRepository(ctrl)
		svc := calendar.NewService(repo)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *calendar.Event) error {
				assert.Equal(t, "Diwali", e.Title)
				assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), e.Date)
				assert.Nil(t, e.Description)
				e.ID = 9
				return nil
			})

		resp, err := svc.Create(ctx, calendar.CreateEventRequest{Title: "Diwali", Date: "2024-11-01"})

		assert.NoError(t, err)
		assert.Equal(t, calendar.EventResponse{ID: 9, Title: "Diwali", Date: "2024-11-01"}, resp)
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := calendar.NewService(calendarMock.NewMockRepository(ctrl))

		_, err := svc.Create(ctx, calendar.CreateEventRequest{Title: "Diwali", Date: "Nov 1"})

		assert.ErrorIs(t, err, calendarerrors.ErrInvalidDate)
	})

	t.Run("blank title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := calendar.NewService(calendarMock.NewMockRepository(ctrl))

		_, err := svc.Create(ctx, calendar.CreateEventRequest{Title: "  ", Date: "2024-11-01"})

		assert.ErrorIs(t, err, calendarerrors.ErrTitleRequired)
	})
}

func TestCalendarService_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := calendarMock.NewMockRepository(ctrl)
	svc := calendar.NewService(repo)

	kind := "holiday"
	repo.EXPECT().FindAll(ctx).Return([]calendar.Event{
		{ID: 1, Title: "New Year", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), EventType: &kind},
	}, nil)

	resp, err := svc.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "2024-01-01", resp[0].Date)
	assert.Equal(t, "holiday", *resp[0].EventType)
}

func TestCalendarService_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := calendarMock.NewMockRepository(ctrl)
	svc := calendar.NewService(repo)

	repo.EXPECT().Delete(ctx, int64(3)).Return(nil)
	repo.EXPECT().Delete(ctx, int64(4)).Return(errors.New("connection reset"))

	assert.NoError(t, svc.Delete(ctx, 3))
	assert.Error(t, svc.Delete(ctx, 4))
}
