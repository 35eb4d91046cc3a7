package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"decor_dev_v1_202609/internal/api/dto"
	"decor_dev_v1_202609/internal/middleware"
	"decor_dev_v1_202609/internal/model"
	"decor_dev_v1_202609/internal/service"
	"decor_dev_v1_202609/pkg/logger"
)

// ==================== ProductController 商品控制器 ====================

// ProductController 商品目录
type ProductController struct {
	productService *service.ProductService
}

// NewProductController 创建商品控制器
func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// ==================== 公开查询接口 ====================

// GetProducts 获取店铺商品列表
// @Summary 获取指定店铺的商品列表（公开）
// @Tags Product
// @Param shop_id query string false "店铺ID，缺省返回空列表"
// @Success 200 {object} map[string]interface{}
// @Router /api/products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	shopID := c.Query("shop_id")

	products, err := ctrl.productService.ListByShop(c.Request.Context(), shopID)
	if err != nil {
		logger.L().Error("商品列表查询失败", zap.String("shop_id", shopID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询失败",
		})
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    products,
		"total":   len(products),
	})
}

// GetProduct 获取商品详情
// @Summary 按商品 ID 获取详情（公开，无租户过滤）
// @Tags Product
// @Param id path string true "商品ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := ctrl.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "商品不存在",
			})
			return
		}
		logger.L().Error("商品查询失败", zap.String("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询失败",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    product,
	})
}

// ==================== 租户写接口 ====================

// CreateProduct 创建商品
// @Summary 创建商品（multipart，最多 6 张图）
// @Tags Product
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param category formData string true "分类"
// @Param name formData string false "名称，缺省取分类"
// @Param description formData string false "描述"
// @Param price formData int false "展示价"
// @Param ar_model formData string false "AR 模型引用"
// @Param ar_model_url formData string false "AR 模型远程地址，由服务端拉取"
// @Param images formData file false "商品图片"
// @Success 200 {object} model.Product
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	shopID := middleware.GetShopID(c)

	var form dto.CreateProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	product, err := ctrl.productService.Create(c.Request.Context(), shopID, &service.CreateProductInput{
		Category:    form.Category,
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		ARModel:     form.ARModel,
		ARModelURL:  form.ARModelURL,
		Images:      form.Images,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCategory), errors.Is(err, service.ErrTooManyFiles):
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": err.Error(),
			})
		default:
			// 存储/数据库故障统一对外 500，细节只进日志
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "创建失败",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "创建成功",
		"data":    product,
	})
}

// DeleteProduct 删除商品
// @Summary 删除本店铺商品（幂等）
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	id := c.Param("id")

	// 跨租户/不存在与真实删除同样返回成功
	if err := ctrl.productService.Delete(c.Request.Context(), shopID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "删除失败",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "删除成功",
	})
}
