package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"decor_dev_v1_202609/internal/model"
	"decor_dev_v1_202609/internal/repository"
	"decor_dev_v1_202609/pkg/logger"
)

// ==================== 输入定义 ====================

// CreateProductInput 商品创建输入，控制器在边界完成表单解析后传入
type CreateProductInput struct {
	Category    string
	Name        string
	Description string
	Price       int64
	ARModel     string
	ARModelURL  string
	Images      []*multipart.FileHeader
}

// ==================== ProductService 商品目录 ====================

// ProductService 商品目录服务
// 所有写操作必须带租户身份；读操作公开
type ProductService struct {
	productRepo repository.ProductRepository
	storage     *StorageService
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, storage *StorageService) *ProductService {
	return &ProductService{productRepo: productRepo, storage: storage}
}

// ==================== 写操作（租户内） ====================

// Create 创建商品
// category 必填；name 缺省取 category；首图冗余到 PrimaryImage
func (s *ProductService) Create(ctx context.Context, shopID string, in *CreateProductInput) (*model.Product, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, ErrMissingCategory
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = category
	}

	imagePaths, err := s.storage.Ingest(in.Images)
	if err != nil {
		return nil, err
	}

	arModel, err := s.resolveARModel(ctx, in)
	if err != nil {
		s.discardFiles(imagePaths)
		return nil, err
	}

	product := &model.Product{
		ID:          uuid.NewString(),
		ShopID:      shopID,
		Category:    category,
		Name:        name,
		Description: in.Description, // 缺省即空串
		Price:       in.Price,
		Images:      model.MediaList(imagePaths),
		ARModel:     arModel,
	}
	if len(imagePaths) > 0 {
		product.PrimaryImage = &imagePaths[0]
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		// 插入失败时补偿清理已落盘的文件
		s.discardFiles(imagePaths)
		if arModel != nil {
			s.discardFiles([]string{*arModel})
		}
		logger.L().Error("商品入库失败",
			zap.String("shop_id", shopID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return product, nil
}

// Delete 删除商品，仅当 id 与租户同时匹配才真正删除
// 跨租户或不存在时静默按成功处理（幂等），不向调用方区分
func (s *ProductService) Delete(ctx context.Context, shopID, productID string) error {
	_, err := s.productRepo.DeleteOwned(ctx, shopID, productID)
	if err != nil {
		logger.L().Error("商品删除失败",
			zap.String("shop_id", shopID), zap.String("product_id", productID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// ==================== 读操作（公开） ====================

// ListByShop 店铺商品列表，创建时间倒序
// shopID 为空直接返回空列表，不视为错误
func (s *ProductService) ListByShop(ctx context.Context, shopID string) ([]model.Product, error) {
	if shopID == "" {
		return []model.Product{}, nil
	}
	return s.productRepo.ListByShop(ctx, shopID)
}

// GetByID 按商品 ID 公开查询，不做租户过滤
func (s *ProductService) GetByID(ctx context.Context, productID string) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ==================== 内部工具 ====================

// resolveARModel 优先用直接引用，其次从远程 URL 拉取入库
func (s *ProductService) resolveARModel(ctx context.Context, in *CreateProductInput) (*string, error) {
	if ref := strings.TrimSpace(in.ARModel); ref != "" {
		return &ref, nil
	}
	if u := strings.TrimSpace(in.ARModelURL); u != "" {
		stored, err := s.storage.IngestFromURL(ctx, u)
		if err != nil {
			return nil, err
		}
		return &stored, nil
	}
	return nil, nil
}

// discardFiles 补偿清理，失败只记日志
func (s *ProductService) discardFiles(paths []string) {
	for _, p := range paths {
		if err := s.storage.Remove(p); err != nil {
			logger.L().Warn("补偿清理文件失败", zap.String("path", p), zap.Error(err))
		}
	}
}

// ==================== 错误定义 ====================

var (
	ErrMissingCategory = errors.New("category 不能为空")
	ErrProductNotFound = errors.New("商品不存在")
	ErrPersistence     = errors.New("数据写入失败")
)
