package model

import (
	"time"
)

// Product 商品
// 创建后只读，不存在 update 操作；删除必须校验 ShopID 归属
type Product struct {
	ID     string `gorm:"primaryKey;size:64" json:"id"`
	ShopID string `gorm:"size:64;index:idx_shop_created;not null" json:"shop_id"` // 店铺 ID (多店铺隔离核心)
	Shop   *Shop  `gorm:"foreignKey:ShopID" json:"-"`

	// --- 商品基本信息 ---
	Category    string `gorm:"size:100;not null" json:"category"`
	Name        string `gorm:"size:255" json:"name"` // 缺省时等于 Category
	Description string `gorm:"type:text" json:"description"`
	Price       int64  `gorm:"default:0" json:"price"` // 展示价，最小货币单位

	// --- 媒体资源 ---
	// PrimaryImage 冗余存 Images 的首元素，方便单图消费方
	PrimaryImage *string   `gorm:"size:255" json:"image"`
	Images       MediaList `json:"images"`
	ARModel      *string   `gorm:"size:255" json:"ar_model"` // AR 模型引用 (.glb)，可空

	CreatedAt time.Time `gorm:"index:idx_shop_created" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
