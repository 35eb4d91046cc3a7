package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== Token 生成/解析 ====================

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("shop-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "shop-1", claims.ShopID)
}

func TestParseToken_Tampered(t *testing.T) {
	token, err := GenerateToken("shop-1")
	assert.NoError(t, err)

	// 篡改最后一段签名
	tampered := token[:len(token)-2] + "xx"
	_, err = ParseToken(tampered)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	old := GetJWTConfig()
	defer SetJWTConfig(old)

	// 负 TTL 直接签出过期 Token
	SetJWTConfig(&JWTConfig{
		SecretKey: old.SecretKey,
		TokenTTL:  -time.Hour,
		Issuer:    old.Issuer,
	})

	token, err := GenerateToken("shop-1")
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	old := GetJWTConfig()
	SetJWTConfig(&JWTConfig{SecretKey: "secret-a", TokenTTL: time.Hour, Issuer: old.Issuer})
	token, err := GenerateToken("shop-1")
	assert.NoError(t, err)

	SetJWTConfig(&JWTConfig{SecretKey: "secret-b", TokenTTL: time.Hour, Issuer: old.Issuer})
	defer SetJWTConfig(old)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

// ==================== 中间件行为 ====================

func setupAuthRouter() *gin.Engine {
	r := gin.New()
	r.POST("/protected", JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"shop_id": GetShopID(c)})
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	r := setupAuthRouter()

	token, err := GenerateToken("shop-1")
	assert.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "缺少 Header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "非 Bearer 格式", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "Token 无效", header: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
		{name: "正常放行", header: "Bearer " + token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodPost, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestJWTAuth_InjectsShopID(t *testing.T) {
	r := setupAuthRouter()

	token, err := GenerateToken("shop-42")
	assert.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shop-42")
}
