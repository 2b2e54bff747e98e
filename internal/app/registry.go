package app

import (
	"database/sql"

	"go-emprecords/internal/auth"
	"go-emprecords/internal/calendar"
	"go-emprecords/internal/config"
	"go-emprecords/internal/document"
	"go-emprecords/internal/employee"
	"go-emprecords/internal/leave"
	"go-emprecords/internal/messaging/kafka"
	"go-emprecords/internal/middleware"
	"go-emprecords/internal/rbac"
	"go-emprecords/internal/shared/counter"
	"go-emprecords/internal/shared/token"
	"go-emprecords/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type modules struct {
	cfg    *config.Config
	sqlDB  *sql.DB
	gormDB *gorm.DB
	rdb    *redis.Client
	store  storage.Storage
	secret string
	logger *zap.Logger
}

func registerModules(router *gin.Engine, m modules) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(m.gormDB)
	counterRepo := counter.NewRepository(m.gormDB)
	documentRepo := document.NewRepository(m.gormDB)
	employeeRepo := employee.NewRepository(m.gormDB)
	eventRepo := calendar.NewRepository(m.gormDB)
	leaveRepo := leave.NewRepository(m.gormDB)
	outboxRepo := kafka.NewOutboxRepository(m.sqlDB)

	// --- Access control ---
	tokens := token.NewManager(m.secret, m.cfg.Auth.TokenTTL)
	rbacService, err := rbac.NewService(rbac.DefaultPolicies, m.logger)
	if err != nil {
		return err
	}
	guard := middleware.NewAccessGuard(m.cfg.Auth.Enforce, tokens, rbacService)

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo, tokens, m.cfg.Auth.AdminUsername, m.logger)
	documentService := document.NewService(documentRepo, employeeRepo, m.store, m.logger)
	employeeService := employee.NewService(m.sqlDB, employeeRepo, counterRepo, outboxRepo, m.store, m.rdb, m.logger)
	eventService := calendar.NewService(eventRepo, m.logger)
	leaveService := leave.NewService(m.sqlDB, leaveRepo, outboxRepo, m.logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, m.logger)
	documentHandler := document.NewHandler(documentService, m.logger)
	employeeHandler := employee.NewHandler(employeeService, m.logger)
	eventHandler := calendar.NewHandler(eventService, m.logger)
	leaveHandler := leave.NewHandler(leaveService, m.logger)

	// --- Routes Registration ---
	auth.RegisterRoutes(router, authHandler, guard)
	calendar.RegisterRoutes(router, eventHandler, guard)
	document.RegisterRoutes(router, documentHandler, guard)
	employee.RegisterRoutes(router, employeeHandler, guard)
	leave.RegisterRoutes(router, leaveHandler, guard, m.rdb)

	return nil
}
