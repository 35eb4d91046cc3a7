package service

import (
	"context"
	"errors"

	"decor_dev_v1_202609/internal/model"
	"decor_dev_v1_202609/internal/repository"
)

// ==================== ShopService 店铺目录 ====================

// ShopService 店铺元数据查询，纯读
type ShopService struct {
	shopRepo repository.ShopRepository
}

// NewShopService 创建店铺服务
func NewShopService(shopRepo repository.ShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

// GetShop 按 ID 查询店铺
func (s *ShopService) GetShop(ctx context.Context, id string) (*model.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	return shop, nil
}

// ==================== 错误定义 ====================

var ErrShopNotFound = errors.New("店铺不存在")
