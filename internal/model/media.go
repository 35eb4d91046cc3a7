package model

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// MediaList 有序媒体路径集合
// postgres 存 text[]；sqlite（测试环境）退化为 text，编码仍走 pq 数组格式
type MediaList []string

func (l MediaList) Value() (driver.Value, error) {
	return pq.StringArray(l).Value()
}

func (l *MediaList) Scan(src interface{}) error {
	return (*pq.StringArray)(l).Scan(src)
}

// GormDataType schema 解析期的通用类型，方言差异在 GormDBDataType 覆盖
func (MediaList) GormDataType() string {
	return "text"
}

func (MediaList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}
