package calendar

import (
	"context"
	"strings"
	"time"

	calendarerrors "go-emprecords/internal/calendar/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=calendar_service.go -destination=mock/calendar_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEventRequest) (EventResponse, error)
	List(ctx context.Context) ([]EventResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEventRequest) (EventResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return EventResponse{}, calendarerrors.ErrTitleRequired
	}
	date, err := time.Parse(DateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return EventResponse{}, calendarerrors.ErrInvalidDate
	}

	event := &Event{
		Title:       title,
		Date:        date,
		Description: req.Description,
		EventType:   req.EventType,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		s.logger.Error("create event failed", zap.Error(err))
		return EventResponse{}, err
	}

	s.logger.Info("create event success", zap.Int64("id", event.ID), zap.String("date", req.Date))
	return mapToResponse(*event), nil
}

func (s *service) List(ctx context.Context) ([]EventResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list events failed", zap.Error(err))
		return nil, err
	}

	res := make([]EventResponse, len(list))
	for i, e := range list {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete event failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("delete event success", zap.Int64("id", id))
	return nil
}

func mapToResponse(e Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date.Format(DateLayout),
		Description: e.Description,
		EventType:   e.EventType,
	}
}
