package storage

import (
	"fmt"

	"go-emprecords/internal/config"
)

// New builds the configured backend. Remote backends sit behind a circuit
// breaker; all backends are instrumented.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case config.StorageLocal, "":
		return Instrument(NewLocalStorage(cfg.LocalDir, cfg.PublicBaseURL)), nil
	case config.StorageCloudinary:
		cl, err := NewCloudinaryStorage(
			cfg.Cloudinary.CloudName,
			cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret,
			cfg.Cloudinary.Folder,
		)
		if err != nil {
			return nil, err
		}
		return Instrument(NewBreakerStorage(cl, DefaultBreakerSettings)), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
