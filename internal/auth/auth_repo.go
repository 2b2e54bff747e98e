package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	FindAdminByUsername(ctx context.Context, username string) (*Admin, error)
	UpdateAdminPassword(ctx context.Context, username, hash string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAdminByUsername(ctx context.Context, username string) (*Admin, error) {
	var admin Admin
	err := r.db.WithContext(ctx).First(&admin, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *repository) UpdateAdminPassword(ctx context.Context, username, hash string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Admin{}).
		Where("username = ?", username).
		Update("password", hash)
	return res.RowsAffected, res.Error
}
