package model

import (
	"time"
)

// ShopAdmin 店铺管理员账号
// 每个管理员恰好归属一个店铺；除登录校验外本服务不修改该表
type ShopAdmin struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt 哈希

	// 归属店铺
	ShopID string `gorm:"size:64;index;not null" json:"shop_id"`
	Shop   *Shop  `gorm:"foreignKey:ShopID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ShopAdmin) TableName() string {
	return "shop_admins"
}
