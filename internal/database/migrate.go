package database

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EnsureSchema creates every table and index in a single transaction.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	log := zap.L().Named("database.migrate")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	log.Info("schema ensured", zap.Int("statements", len(schemaStatements)))
	return nil
}

// SeedAdmin inserts the bootstrap admin account unless it already exists.
// An empty password skips seeding.
func SeedAdmin(ctx context.Context, db *sql.DB, username, password string) error {
	log := zap.L().Named("database.seed")
	if username == "" || password == "" {
		log.Info("admin seed skipped, no credentials configured")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO admin (username, password) VALUES ($1, $2) ON CONFLICT (username) DO NOTHING`,
		username, string(hash),
	)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		log.Info("admin account seeded", zap.String("username", username))
	}
	return nil
}
