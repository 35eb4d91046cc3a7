package dto

import "mime/multipart"

// CreateProductForm 商品创建表单 (multipart)
// category 必填；name 缺省取 category；图片最多 6 张
type CreateProductForm struct {
	Category    string `form:"category"`
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       int64  `form:"price"`

	// AR 模型：直接给引用，或给远程 URL 由服务端拉取入库
	ARModel    string `form:"ar_model"`
	ARModelURL string `form:"ar_model_url"`

	Images []*multipart.FileHeader `form:"images"`
}
