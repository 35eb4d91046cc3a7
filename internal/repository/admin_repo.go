package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"decor_dev_v1_202609/internal/model"
)

// ==================== 接口定义 ====================

// AdminRepository 管理员仓储接口（登录期间只读）
type AdminRepository interface {
	// GetByEmail 邮箱精确匹配；未命中返回 (nil, nil)
	GetByEmail(ctx context.Context, email string) (*model.ShopAdmin, error)
}

// ==================== 仓储实现 ====================

type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepository 创建管理员仓储
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*model.ShopAdmin, error) {
	var admin model.ShopAdmin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
