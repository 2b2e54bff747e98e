package app

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"

	"go-emprecords/internal/bootstrap"
	"go-emprecords/internal/config"
	"go-emprecords/internal/middleware"
	"go-emprecords/internal/shared/connection"
	"go-emprecords/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App is the assembled HTTP surface plus the resources it owns.
type App struct {
	Handler http.Handler
	closers []func() error
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zap.L().Warn("close resource failed", zap.Error(err))
		}
	}
}

func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	log := logger.Named("app")
	a := &App{}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, sqlDB.Close)
	log.Info("database connection established")

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, rdb.Close)
		log.Info("redis connection established")
	} else {
		log.Info("redis disabled, employee cache and idempotency keys are off")
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		a.Close()
		return nil, err
	}
	log.Info("file storage ready", zap.String("backend", store.Name()))

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		secret, err = randomSecret()
		if err != nil {
			a.Close()
			return nil, err
		}
		log.Warn("JWT_SECRET not set, tokens will not survive a restart")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.Metrics(),
	)

	if err := registerModules(router, modules{
		cfg:    cfg,
		sqlDB:  sqlDB,
		gormDB: gormDB,
		rdb:    rdb,
		store:  store,
		secret: secret,
		logger: logger,
	}); err != nil {
		a.Close()
		return nil, err
	}

	registerStatic(router, cfg)

	a.Handler = bootstrap.WithCORS(router, cfg.CORS.AllowedOrigins)
	return a, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate jwt secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
