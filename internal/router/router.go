package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"decor_dev_v1_202609/internal/controller"
	"decor_dev_v1_202609/internal/middleware"
)

// Controllers 控制器集合
type Controllers struct {
	Auth    *controller.AuthController
	Shop    *controller.ShopController
	Product *controller.ProductController
	Site    *controller.SiteController
}

// SetupRouter 构建 gin 引擎并注册所有路由
// uploadDir 下的文件按 /uploads 公开
func SetupRouter(ctls *Controllers, uploadDir string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// 上传媒体静态暴露
	r.Static("/uploads", uploadDir)

	// 演示页面
	r.GET("/ar/:id", ctls.Site.ARView)
	r.GET("/get-qr", ctls.Site.GetQR)

	// API 路由组
	api := r.Group("/api")
	{
		// auth 鉴权组
		auth := api.Group("/auth")
		{
			// POST /api/auth/login
			auth.POST("/login", ctls.Auth.Login)
		}

		// shop 店铺信息（公开）
		shops := api.Group("/shops")
		{
			// GET /api/shops/:id
			shops.GET("/:id", ctls.Shop.GetShop)
		}

		// product 组：读公开，写走 JWTAuth
		products := api.Group("/products")
		{
			// GET /api/products?shop_id=xxx
			products.GET("", ctls.Product.GetProducts)
			products.GET("/:id", ctls.Product.GetProduct)

			products.POST("", middleware.JWTAuth(), ctls.Product.CreateProduct)
			products.DELETE("/:id", middleware.JWTAuth(), ctls.Product.DeleteProduct)
		}
	}

	return r
}
