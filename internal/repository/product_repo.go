package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"decor_dev_v1_202609/internal/model"
)

// ==================== 接口定义 ====================

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	// GetByID 按商品 ID 查询，不做租户过滤（公开读）；未命中返回 (nil, nil)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	// ListByShop 按店铺查询，创建时间倒序
	ListByShop(ctx context.Context, shopID string) ([]model.Product, error)
	// DeleteOwned 仅当 id 与 shopID 同时匹配才删除，返回受影响行数
	DeleteOwned(ctx context.Context, shopID, id string) (int64, error)
	// CountByMediaPath 统计引用了指定媒体路径的商品数（孤儿文件清理用）
	CountByMediaPath(ctx context.Context, path string) (int64, error)
}

// ==================== 仓储实现 ====================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) ListByShop(ctx context.Context, shopID string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) DeleteOwned(ctx context.Context, shopID, id string) (int64, error) {
	// 归属不匹配与记录不存在同样表现为 0 行，调用方不区分
	result := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		Delete(&model.Product{})
	return result.RowsAffected, result.Error
}

func (r *productRepo) CountByMediaPath(ctx context.Context, path string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("primary_image = ? OR ar_model = ? OR ? = ANY(images)", path, path, path).
		Count(&count).Error
	return count, err
}
