package repository

import (
	"context"

	"gorm.io/gorm"

	"student-score/backend/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// Create 仅供离线建号工具使用
	Create(ctx context.Context, user *model.User) error
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, wrap("get user", err)
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return wrap("create user", r.db.WithContext(ctx).Create(user).Error)
}
