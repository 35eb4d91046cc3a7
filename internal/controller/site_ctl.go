package controller

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"decor_dev_v1_202609/internal/service"
)

// 演示模型，商品未挂 AR 模型时兜底
const demoModelURL = "https://modelviewer.dev/shared-assets/models/Astronaut.glb"

// ==================== SiteController 演示页面 ====================

// SiteController AR 预览与二维码演示页，纯展示无状态
type SiteController struct {
	productService *service.ProductService
	baseURL        string // 二维码指向的门店地址
}

// NewSiteController 创建演示页控制器
func NewSiteController(productService *service.ProductService, baseURL string) *SiteController {
	return &SiteController{productService: productService, baseURL: baseURL}
}

// ARView AR 预览页
// @Summary 商品 AR 预览页（公开）
// @Tags Site
// @Param id path string true "商品ID"
// @Produce html
// @Router /ar/{id} [get]
func (ctrl *SiteController) ARView(c *gin.Context) {
	src := demoModelURL
	if p, err := ctrl.productService.GetByID(c.Request.Context(), c.Param("id")); err == nil && p.ARModel != nil {
		src = *p.ARModel
	}

	html := fmt.Sprintf(`<html>
  <body style="font-family:Arial;text-align:center">
    <h2>View It Live (AR Demo)</h2>
    <p>This is a demo AR preview</p>

    <model-viewer
      src="%s"
      ar
      auto-rotate
      camera-controls
      style="width:100%%;height:400px">
    </model-viewer>

    <script src="https://unpkg.com/@google/model-viewer/dist/model-viewer.min.js"></script>
  </body>
</html>`, src)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GetQR 门店二维码页
// @Summary 生成指向门店首页的二维码（公开）
// @Tags Site
// @Produce html
// @Router /get-qr [get]
func (ctrl *SiteController) GetQR(c *gin.Context) {
	png, err := qrcode.Encode(ctrl.baseURL, qrcode.Medium, 256)
	if err != nil {
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	html := fmt.Sprintf(`<html>
  <body style="text-align:center;font-family:Arial">
    <h2>Scan This QR</h2>
    <img src="data:image/png;base64,%s" />
    <p>%s</p>
  </body>
</html>`, base64.StdEncoding.EncodeToString(png), ctrl.baseURL)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
