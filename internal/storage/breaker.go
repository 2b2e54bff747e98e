package storage

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

type BreakerSettings struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

var DefaultBreakerSettings = BreakerSettings{
	MaxRequests:      1,
	Interval:         time.Minute,
	Timeout:          30 * time.Second,
	FailureThreshold: 5,
}

// BreakerStorage short-circuits Put while the wrapped backend keeps failing.
type BreakerStorage struct {
	inner Storage
	cb    *gobreaker.CircuitBreaker[string]
}

func NewBreakerStorage(inner Storage, cfg BreakerSettings) *BreakerStorage {
	log := zap.L().Named("storage.breaker")
	settings := gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			// Rejected keys say nothing about backend health.
			return err == nil || errors.Is(err, ErrInvalidKey)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("storage breaker state changed",
				zap.String("backend", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
	return &BreakerStorage{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[string](settings),
	}
}

func (s *BreakerStorage) Name() string { return s.inner.Name() }

func (s *BreakerStorage) State() gobreaker.State { return s.cb.State() }

func (s *BreakerStorage) Put(ctx context.Context, obj Object) (string, error) {
	url, err := s.cb.Execute(func() (string, error) {
		return s.inner.Put(ctx, obj)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", ErrUnavailable.WithCause(err)
	}
	return url, err
}
