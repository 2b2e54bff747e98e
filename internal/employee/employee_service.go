package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	employeeerrors "go-emprecords/internal/employee/errors"
	"go-emprecords/internal/events"
	"go-emprecords/internal/messaging/kafka"
	"go-emprecords/internal/shared/contextutil"
	"go-emprecords/internal/shared/counter"
	"go-emprecords/internal/storage"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	EmployeeListKey     = "employees:list"
	employeeListTTL     = 10 * time.Minute
	employeeCounterType = "employee_id"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error)
	Create(ctx context.Context, req EmployeeRequest, image *ImageUpload) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req EmployeeRequest, image *ImageUpload) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
	UploadProfileImage(ctx context.Context, employeeID string, image ImageUpload) (ProfileImageResponse, error)
	Export(ctx context.Context, w io.Writer) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	storage storage.Storage
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

// NewService wires the employee service. outboxRepo and rdb may be nil.
func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	store storage.Storage,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		storage: store,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) List(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("list employees requested", zap.String("request_id", contextutil.GetRequestID(ctx)))

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeListKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Callers sharing the flight must not fail because the first one went away.
	fillCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(EmployeeListKey, func() (interface{}, error) {
		empls, err := s.repo.FindAll(fillCtx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeListKey, data, employeeListTTL).Err(); err != nil {
					s.logger.Warn("cache employee list failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.Int64("id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*empl), nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by employee_id requested", zap.String("employee_id", employeeID))

	empl, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		s.logger.Warn("get employee by employee_id failed", zap.String("employee_id", employeeID), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, req EmployeeRequest, image *ImageUpload) (_ EmployeeResponse, retErr error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
	)

	empl := &Employee{}
	if err := applyRequest(empl, req); err != nil {
		return EmployeeResponse{}, err
	}

	if image != nil {
		if empl.EmployeeID != "" {
			if err := s.ensureEmployeeIDFree(ctx, empl.EmployeeID); err != nil {
				return EmployeeResponse{}, err
			}
		}
		url, err := s.storeProfileImage(ctx, *image)
		if err != nil {
			s.logger.Error("create employee store image failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.ProfileImage = &url
		defer s.reportOrphanedImage(rid, url, &retErr)
	}

	if empl.EmployeeID == "" {
		next, err := s.counter.GetNextValue(ctx, employeeCounterType)
		if err != nil {
			s.logger.Error("create employee generate employee_id failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.EmployeeID = fmt.Sprintf("EMP-%06d", next)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		evt, err := kafka.NewOutboxEvent(rid, "employee", empl.EmployeeID,
			events.EventTypeEmployeeCreated, events.EmployeeCreatedTopic,
			events.EmployeeCreatedEvent{
				EventType:   events.EventTypeEmployeeCreated,
				RequestID:   rid,
				ID:          empl.ID,
				EmployeeID:  empl.EmployeeID,
				Name:        empl.Name,
				Designation: empl.Designation,
				Team:        empl.Team,
				OccurredAt:  time.Now().UTC(),
			})
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.EmployeeID),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateList(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("id", empl.ID),
		zap.String("employee_id", empl.EmployeeID),
	)
	return ToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req EmployeeRequest, image *ImageUpload) (_ EmployeeResponse, retErr error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested", zap.String("request_id", rid), zap.Int64("id", id))

	if err := validateDates(req); err != nil {
		return EmployeeResponse{}, err
	}

	var imageURL *string
	if image != nil {
		url, err := s.storeProfileImage(ctx, *image)
		if err != nil {
			s.logger.Error("update employee store image failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
		imageURL = &url
		defer s.reportOrphanedImage(rid, url, &retErr)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.Int64("id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	storedImage := empl.ProfileImage
	storedEmployeeID := empl.EmployeeID
	if err := applyRequest(empl, req); err != nil {
		return EmployeeResponse{}, err
	}
	switch {
	case imageURL != nil:
		empl.ProfileImage = imageURL
	case req.ProfileImage == nil:
		empl.ProfileImage = storedImage
	}
	if empl.EmployeeID == "" {
		empl.EmployeeID = storedEmployeeID
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Int64("id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateList(ctx)

	s.logger.Info("update employee success", zap.String("request_id", rid), zap.Int64("id", id))
	return ToResponse(*empl), nil
}

// Delete is idempotent: removing a missing row is not an error.
func (s *service) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("delete employee requested", zap.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Int64("id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateList(ctx)

	s.logger.Info("delete employee success", zap.Int64("id", id))
	return nil
}

func (s *service) UploadProfileImage(ctx context.Context, employeeID string, image ImageUpload) (ProfileImageResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("upload profile image requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	if _, err := s.repo.FindByEmployeeID(ctx, employeeID); err != nil {
		s.logger.Warn("upload profile image employee lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return ProfileImageResponse{}, mapRepositoryError(err)
	}

	url, err := s.storeProfileImage(ctx, image)
	if err != nil {
		s.logger.Error("upload profile image store failed", zap.String("employee_id", employeeID), zap.Error(err))
		return ProfileImageResponse{}, err
	}

	n, err := s.repo.UpdateProfileImage(ctx, employeeID, url)
	if err != nil {
		s.logger.Error("upload profile image persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return ProfileImageResponse{}, mapRepositoryError(err)
	}
	if n == 0 {
		return ProfileImageResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	s.invalidateList(ctx)

	s.logger.Info("upload profile image success", zap.String("employee_id", employeeID))
	return ProfileImageResponse{EmployeeID: employeeID, ProfileImage: url}, nil
}

func (s *service) ensureEmployeeIDFree(ctx context.Context, employeeID string) error {
	_, err := s.repo.FindByEmployeeID(ctx, employeeID)
	switch {
	case err == nil:
		return employeeerrors.ErrEmployeeIDAlreadyExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return mapRepositoryError(err)
	}
}

// reportOrphanedImage logs an uploaded image whose employee row was never
// written. Storage has no delete, so the object stays behind.
func (s *service) reportOrphanedImage(rid, url string, errp *error) {
	if *errp == nil {
		return
	}
	s.logger.Warn("profile image stored without employee row",
		zap.String("request_id", rid),
		zap.String("url", url),
		zap.Error(*errp),
	)
}

func (s *service) invalidateList(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeListKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee list cache",
			zap.Error(err),
			zap.String("key", EmployeeListKey),
		)
	}
}

// applyRequest copies every mutable field of req onto empl. Optional fields
// left out of req become NULL. The password is hashed, and kept as-is when
// omitted.
func applyRequest(empl *Employee, req EmployeeRequest) error {
	dob, err := parseDate(req.DOB)
	if err != nil {
		return err
	}
	joining, err := parseDate(req.JoiningDate)
	if err != nil {
		return err
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashed := string(hash)
		empl.Password = &hashed
	}

	empl.EmployeeID = strings.TrimSpace(req.EmployeeID)
	empl.Name = strings.TrimSpace(req.Name)
	empl.Designation = nullable(req.Designation)
	empl.DOB = dob
	empl.JoiningDate = joining
	empl.PayrollName = nullable(req.PayrollName)
	empl.Team = nullable(req.Team)
	empl.Grade = nullable(req.Grade)
	empl.ProfileImage = nullable(req.ProfileImage)
	empl.PL = intOrZero(req.PL)
	empl.CL = intOrZero(req.CL)
	empl.SL = intOrZero(req.SL)
	empl.EL = intOrZero(req.EL)
	return nil
}

func validateDates(req EmployeeRequest) error {
	if _, err := parseDate(req.DOB); err != nil {
		return err
	}
	_, err := parseDate(req.JoiningDate)
	return err
}

func parseDate(v *string) (*time.Time, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(*v))
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate.WithCause(err)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func nullable(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// ToResponse is the public view of an employee. The password hash is never included.
func ToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           empl.ID,
		EmployeeID:   empl.EmployeeID,
		Name:         empl.Name,
		Designation:  empl.Designation,
		DOB:          formatDate(empl.DOB),
		JoiningDate:  formatDate(empl.JoiningDate),
		PayrollName:  empl.PayrollName,
		Team:         empl.Team,
		Grade:        empl.Grade,
		ProfileImage: empl.ProfileImage,
		PL:           empl.PL,
		CL:           empl.CL,
		SL:           empl.SL,
		EL:           empl.EL,
		CreatedAt:    empl.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = ToResponse(e)
	}
	return res
}
