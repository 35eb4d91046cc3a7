package database

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"decor_dev_v1_202609/internal/model"
	"decor_dev_v1_202609/pkg/logger"
)

// SeedDemoData 写入演示店铺数据
// 店铺/管理员的正式开通走后台流程，这里只负责 demo 环境的初始数据；
// 已存在时跳过，可重复执行
func SeedDemoData(db *gorm.DB, adminPassword string) error {
	var count int64
	if err := db.Model(&model.Shop{}).Where("id = ?", "demo-shop").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	shop := &model.Shop{
		ID:       "demo-shop",
		Name:     "Demo Decor Store",
		WhatsApp: "919999999999",
		LogoURL:  "https://via.placeholder.com/120",
		Tagline:  "Furniture you can see in your room",
	}
	if err := db.Create(shop).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.ShopAdmin{
		Email:    "admin@demo-shop.local",
		Password: string(hash),
		ShopID:   shop.ID,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	placeholder := "https://via.placeholder.com/300"
	products := []model.Product{
		{ID: "chair1", ShopID: shop.ID, Category: "chair", Name: "Wooden Chair", Price: 3500, PrimaryImage: &placeholder},
		{ID: "sofa1", ShopID: shop.ID, Category: "sofa", Name: "Luxury Sofa", Price: 25000, PrimaryImage: &placeholder},
		{ID: "lamp1", ShopID: shop.ID, Category: "lamp", Name: "Modern Lamp", Price: 2200, PrimaryImage: &placeholder},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	logger.L().Info("演示数据写入完成", zap.String("shop_id", shop.ID))
	return nil
}
