package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin единственная роль: владелец объекта
const RoleAdmin = "admin"

// DefaultTokenTTL время жизни сессии администратора
const DefaultTokenTTL = 8 * time.Hour

// Config параметры входа администратора
type Config struct {
	Secret       string
	PasswordHash string // bcrypt
	TokenTTL     time.Duration
	Issuer       string
}

// Claims содержимое токена сессии
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResponse выданный токен
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
