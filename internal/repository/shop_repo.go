package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"decor_dev_v1_202609/internal/model"
)

// ==================== 接口定义 ====================

// ShopRepository 店铺仓储接口（只读）
type ShopRepository interface {
	// GetByID 未命中返回 (nil, nil)
	GetByID(ctx context.Context, id string) (*model.Shop, error)
}

// ==================== 仓储实现 ====================

type shopRepo struct {
	db *gorm.DB
}

// NewShopRepository 创建店铺仓储
func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepo{db: db}
}

func (r *shopRepo) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	var shop model.Shop
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}
