package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"decor_dev_v1_202609/internal/api/dto"
	"decor_dev_v1_202609/internal/middleware"
	"decor_dev_v1_202609/internal/repository"
)

// ==================== AuthService 管理员认证 ====================

// AuthService 管理员认证服务
type AuthService struct {
	adminRepo repository.AdminRepository
}

// NewAuthService 创建认证服务
func NewAuthService(adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{adminRepo: adminRepo}
}

// Login 管理员登录
// 账号不存在与密码错误返回同一个错误，不泄露具体原因
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	// bcrypt 常数时间比较
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(admin.ShopID)
	if err != nil {
		return nil, err
	}

	cfg := middleware.GetJWTConfig()
	return &dto.LoginResponse{
		Token:     token,
		ShopID:    admin.ShopID,
		ExpiresAt: time.Now().Add(cfg.TokenTTL),
	}, nil
}

// ==================== 错误定义 ====================

var ErrInvalidCredentials = errors.New("邮箱或密码错误")
