package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"decor_dev_v1_202609/internal/model"
	"decor_dev_v1_202609/internal/repository"
)

// ==================== 测试辅助 ====================

func setupProductSvcTest(t *testing.T) (*ProductService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Shop{}, &model.Product{}))

	storage, err := NewStorageService(&StorageConfig{
		BaseDir:      t.TempDir(),
		PublicPrefix: "/uploads",
	})
	require.NoError(t, err)

	svc := NewProductService(repository.NewProductRepository(db), storage)
	return svc, db
}

// ==================== 创建 ====================

func TestCreate_MissingCategory(t *testing.T) {
	svc, _ := setupProductSvcTest(t)

	_, err := svc.Create(context.Background(), "shop-1", &CreateProductInput{
		Name: "随便一个名字",
	})
	assert.ErrorIs(t, err, ErrMissingCategory)

	// 空白同样视为缺失
	_, err = svc.Create(context.Background(), "shop-1", &CreateProductInput{
		Category: "   ",
	})
	assert.ErrorIs(t, err, ErrMissingCategory)
}

func TestCreate_Defaults(t *testing.T) {
	svc, _ := setupProductSvcTest(t)

	p, err := svc.Create(context.Background(), "shop-1", &CreateProductInput{
		Category: "chair",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "shop-1", p.ShopID)
	assert.Equal(t, "chair", p.Category)
	assert.Equal(t, "chair", p.Name) // name 缺省取 category
	assert.Equal(t, "", p.Description)
	assert.Nil(t, p.PrimaryImage)
	assert.Nil(t, p.ARModel)
}

func TestCreate_WithImages(t *testing.T) {
	svc, _ := setupProductSvcTest(t)

	p, err := svc.Create(context.Background(), "shop-1", &CreateProductInput{
		Category: "sofa",
		Name:     "Luxury Sofa",
		Images:   makeFileHeaders(t, "front.png", "side.png"),
	})
	require.NoError(t, err)

	require.Len(t, p.Images, 2)
	require.NotNil(t, p.PrimaryImage)
	// 首图冗余到 PrimaryImage
	assert.Equal(t, p.Images[0], *p.PrimaryImage)

	got, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string(p.Images), []string(got.Images))
}

func TestCreate_NotIdempotent(t *testing.T) {
	svc, _ := setupProductSvcTest(t)

	p1, err := svc.Create(context.Background(), "shop-1", &CreateProductInput{Category: "lamp"})
	require.NoError(t, err)
	p2, err := svc.Create(context.Background(), "shop-1", &CreateProductInput{Category: "lamp"})
	require.NoError(t, err)

	// 重复调用生成两个独立商品
	assert.NotEqual(t, p1.ID, p2.ID)
}

// ==================== 删除 ====================

func TestDelete_ThenGetNotFound(t *testing.T) {
	svc, _ := setupProductSvcTest(t)

	p, err := svc.Create(context.Background(), "shop-1", &CreateProductInput{Category: "chair"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "shop-1", p.ID))

	_, err = svc.GetByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDelete_CrossTenantNoOp(t *testing.T) {
	svc, _ := setupProductSvcTest(t)

	p, err := svc.Create(context.Background(), "shop-2", &CreateProductInput{Category: "chair"})
	require.NoError(t, err)

	// 别的租户删除：静默成功但不生效
	assert.NoError(t, svc.Delete(context.Background(), "shop-1", p.ID))

	got, err := svc.GetByID(context.Background(), p.ID)
	assert.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestDelete_MissingIDNoOp(t *testing.T) {
	svc, _ := setupProductSvcTest(t)

	assert.NoError(t, svc.Delete(context.Background(), "shop-1", "no-such-id"))
}

// ==================== 查询 ====================

func TestListByShop_TenantScoped(t *testing.T) {
	svc, _ := setupProductSvcTest(t)

	_, err := svc.Create(context.Background(), "shop-1", &CreateProductInput{Category: "chair"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "shop-2", &CreateProductInput{Category: "sofa"})
	require.NoError(t, err)

	list, err := svc.ListByShop(context.Background(), "shop-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	for _, p := range list {
		assert.Equal(t, "shop-1", p.ShopID)
	}
}

func TestListByShop_OrderedByCreationDesc(t *testing.T) {
	svc, db := setupProductSvcTest(t)

	// 直接写入不同的创建时间
	old := model.Product{ID: "p-old", ShopID: "shop-1", Category: "chair", Name: "old",
		CreatedAt: time.Now().Add(-time.Hour)}
	recent := model.Product{ID: "p-new", ShopID: "shop-1", Category: "chair", Name: "new",
		CreatedAt: time.Now()}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	list, err := svc.ListByShop(context.Background(), "shop-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p-new", list[0].ID)
	assert.Equal(t, "p-old", list[1].ID)
}

func TestListByShop_EmptyShopID(t *testing.T) {
	svc, _ := setupProductSvcTest(t)

	list, err := svc.ListByShop(context.Background(), "")
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := setupProductSvcTest(t)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
