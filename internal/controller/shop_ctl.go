package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"decor_dev_v1_202609/internal/service"
	"decor_dev_v1_202609/pkg/logger"
)

// ==================== ShopController 店铺控制器 ====================

// ShopController 店铺元数据查询
type ShopController struct {
	shopService *service.ShopService
}

// NewShopController 创建店铺控制器
func NewShopController(shopService *service.ShopService) *ShopController {
	return &ShopController{shopService: shopService}
}

// GetShop 获取店铺信息
// @Summary 按 ID 获取店铺信息（公开）
// @Tags Shop
// @Param id path string true "店铺ID"
// @Success 200 {object} model.Shop
// @Failure 404 {object} map[string]interface{}
// @Router /api/shops/{id} [get]
func (ctrl *ShopController) GetShop(c *gin.Context) {
	id := c.Param("id")

	shop, err := ctrl.shopService.GetShop(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "店铺不存在",
			})
			return
		}
		logger.L().Error("店铺查询失败", zap.String("shop_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询失败",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    shop,
	})
}
