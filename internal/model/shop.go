package model

import (
	"time"
)

// Shop 店铺（租户）
// 由种子数据/后台开通流程创建，本服务视角下只读
type Shop struct {
	// 对外暴露的店铺标识，也是多租户隔离的 key
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	// 门店展示信息
	LogoURL  string `gorm:"size:255" json:"logo"`
	Tagline  string `gorm:"size:255" json:"tagline"`
	WhatsApp string `gorm:"size:20" json:"whatsapp"` // 联系号码，纯数字

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Shop) TableName() string {
	return "shops"
}
