package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"decor_dev_v1_202609/internal/api/dto"
	"decor_dev_v1_202609/internal/middleware"
	"decor_dev_v1_202609/internal/model"
)

// ==================== 测试桩 ====================

// fakeAdminRepo 内存管理员仓储
type fakeAdminRepo struct {
	admins map[string]*model.ShopAdmin
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*model.ShopAdmin, error) {
	return r.admins[email], nil
}

func newAuthSvcForTest(t *testing.T) *AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	repo := &fakeAdminRepo{admins: map[string]*model.ShopAdmin{
		"a@x.com": {ID: 1, Email: "a@x.com", Password: string(hash), ShopID: "shop-1"},
	}}
	return NewAuthService(repo)
}

// ==================== 登录 ====================

func TestLogin_Success(t *testing.T) {
	svc := newAuthSvcForTest(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "a@x.com",
		Password: "secret",
	})
	assert.NoError(t, err)
	assert.Equal(t, "shop-1", resp.ShopID)

	// 签出的 Token 必须能解析回同一租户
	claims, err := middleware.ParseToken(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, "shop-1", claims.ShopID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthSvcForTest(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "a@x.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAuthSvcForTest(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@x.com",
		Password: "secret",
	})
	// 账号不存在与密码错误必须是同一个错误
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
