package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey string        // 签名密钥，进程级，启动后只读
	TokenTTL  time.Duration // Token 有效期
	Issuer    string        // 签发者
}

// DefaultJWTConfig 默认配置
func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		SecretKey: "decor-saas-secret-key-change-in-production",
		TokenTTL:  7 * 24 * time.Hour, // 7 天，过期后只能重新登录
		Issuer:    "decor-saas",
	}
}

// 全局配置
var jwtConfig = DefaultJWTConfig()

// SetJWTConfig 设置 JWT 配置（仅启动时调用）
func SetJWTConfig(cfg *JWTConfig) {
	jwtConfig = cfg
}

// GetJWTConfig 获取 JWT 配置
func GetJWTConfig() *JWTConfig {
	return jwtConfig
}

// ==================== Claims 定义 ====================

// ShopClaims 租户声明，只携带店铺身份
type ShopClaims struct {
	ShopID string `json:"shop_id"`
	jwt.RegisteredClaims
}

// ==================== Token 生成 ====================

// GenerateToken 为店铺签发 Token
func GenerateToken(shopID string) (string, error) {
	now := time.Now()
	claims := &ShopClaims{
		ShopID: shopID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtConfig.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtConfig.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.SecretKey))
}

// ==================== Token 解析 ====================

// ParseToken 解析 Token，签名错误或过期均返回 error
func ParseToken(tokenString string) (*ShopClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ShopClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtConfig.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*ShopClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyShopID = "shop_id"
	ContextKeyClaims = "claims"
)

// JWTAuth 租户认证中间件
// 只挂在写操作路由上，公开读接口不经过这里
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取 Authorization Header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "未提供认证信息",
			})
			c.Abort()
			return
		}

		// 解析 Bearer Token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "认证格式错误，应为 Bearer {token}",
			})
			c.Abort()
			return
		}

		// 解析 Token
		claims, err := ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Token 无效或已过期",
			})
			c.Abort()
			return
		}

		// 注入租户身份到 Context
		c.Set(ContextKeyShopID, claims.ShopID)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// ==================== 辅助函数 ====================

// GetShopID 从 Context 获取当前租户 ID
func GetShopID(c *gin.Context) string {
	if id, exists := c.Get(ContextKeyShopID); exists {
		return id.(string)
	}
	return ""
}

// GetShopClaims 从 Context 获取完整 Claims
func GetShopClaims(c *gin.Context) *ShopClaims {
	if claims, exists := c.Get(ContextKeyClaims); exists {
		return claims.(*ShopClaims)
	}
	return nil
}
