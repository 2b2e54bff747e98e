package auth

import (
	"context"
	"errors"
	"strings"

	autherrors "go-emprecords/internal/auth/errors"
	"go-emprecords/internal/employee"
	"go-emprecords/internal/shared/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	EmployeeLogin(ctx context.Context, req EmployeeLoginRequest) (EmployeeLoginResult, error)
	AdminLogin(ctx context.Context, req AdminLoginRequest) (string, error)
	ChangeAdminPassword(ctx context.Context, newPassword string) error
}

type service struct {
	repo          Repository
	employees     employee.Repository
	tokens        *token.Manager
	adminUsername string
	logger        *zap.Logger
}

// NewService wires authentication. adminUsername names the bootstrap admin
// whose password ChangeAdminPassword replaces.
func NewService(
	repo Repository,
	employees employee.Repository,
	tokens *token.Manager,
	adminUsername string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:          repo,
		employees:     employees,
		tokens:        tokens,
		adminUsername: adminUsername,
		logger:        l,
	}
}

func (s *service) EmployeeLogin(ctx context.Context, req EmployeeLoginRequest) (EmployeeLoginResult, error) {
	s.logger.Debug("employee login requested", zap.String("employee_id", req.EmployeeID))

	if strings.TrimSpace(req.EmployeeID) == "" || req.Password == "" {
		return EmployeeLoginResult{}, autherrors.ErrInvalidCredentials
	}

	empl, err := s.employees.FindByEmployeeID(ctx, req.EmployeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Info("employee login rejected", zap.String("employee_id", req.EmployeeID))
		return EmployeeLoginResult{}, autherrors.ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Error("employee login lookup failed", zap.Error(err))
		return EmployeeLoginResult{}, err
	}

	if empl.Password == nil || !passwordMatches(*empl.Password, req.Password) {
		s.logger.Info("employee login rejected", zap.String("employee_id", req.EmployeeID))
		return EmployeeLoginResult{}, autherrors.ErrInvalidCredentials
	}

	signed, _, err := s.tokens.Issue(empl.EmployeeID, token.RoleEmployee)
	if err != nil {
		s.logger.Error("employee token generation failed", zap.Error(err))
		return EmployeeLoginResult{}, err
	}

	s.logger.Info("employee login success", zap.String("employee_id", empl.EmployeeID))
	return EmployeeLoginResult{
		Employee: employee.ToResponse(*empl),
		Token:    signed,
	}, nil
}

func (s *service) AdminLogin(ctx context.Context, req AdminLoginRequest) (string, error) {
	s.logger.Debug("admin login requested", zap.String("username", req.Username))

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return "", autherrors.ErrInvalidAdminCredentials
	}

	admin, err := s.repo.FindAdminByUsername(ctx, req.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Info("admin login rejected", zap.String("username", req.Username))
		return "", autherrors.ErrInvalidAdminCredentials
	}
	if err != nil {
		s.logger.Error("admin login lookup failed", zap.Error(err))
		return "", err
	}

	if !passwordMatches(admin.Password, req.Password) {
		s.logger.Info("admin login rejected", zap.String("username", req.Username))
		return "", autherrors.ErrInvalidAdminCredentials
	}

	signed, _, err := s.tokens.Issue(admin.Username, token.RoleAdmin)
	if err != nil {
		s.logger.Error("admin token generation failed", zap.Error(err))
		return "", err
	}

	s.logger.Info("admin login success", zap.String("username", admin.Username))
	return signed, nil
}

func (s *service) ChangeAdminPassword(ctx context.Context, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return autherrors.ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	rows, err := s.repo.UpdateAdminPassword(ctx, s.adminUsername, string(hash))
	if err != nil {
		s.logger.Error("admin password update failed", zap.Error(err))
		return err
	}
	if rows == 0 {
		s.logger.Warn("admin password update matched no account", zap.String("username", s.adminUsername))
		return autherrors.ErrAdminNotFound
	}

	s.logger.Info("admin password updated", zap.String("username", s.adminUsername))
	return nil
}

func passwordMatches(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
