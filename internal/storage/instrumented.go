package storage

import (
	"context"

	"go-emprecords/internal/metrics"

	"go.uber.org/zap"
)

type instrumentedStorage struct {
	inner  Storage
	logger *zap.Logger
}

// Instrument records an upload metric and a log line for every Put.
func Instrument(inner Storage, logger ...*zap.Logger) Storage {
	l := zap.L().Named("storage")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage")
	}
	return &instrumentedStorage{inner: inner, logger: l}
}

func (s *instrumentedStorage) Name() string { return s.inner.Name() }

func (s *instrumentedStorage) Put(ctx context.Context, obj Object) (string, error) {
	url, err := s.inner.Put(ctx, obj)
	metrics.RecordStorageUpload(s.inner.Name(), err)
	if err != nil {
		s.logger.Error("storage put failed",
			zap.String("backend", s.inner.Name()),
			zap.String("key", obj.Key),
			zap.Error(err),
		)
		return "", err
	}
	s.logger.Info("storage put success",
		zap.String("backend", s.inner.Name()),
		zap.String("key", obj.Key),
		zap.Int64("size", obj.Size),
	)
	return url, nil
}
