package dto

import "time"

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string    `json:"token"`
	ShopID    string    `json:"shop_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
