package models

import "github.com/golang-jwt/jwt/v5"

// AdminRole, admin token'larında taşınan rol değeri.
const AdminRole = "admin"

// TokenClaims, admin JWT token'ının payload'ı.
//
// Back office'in tek bir hesabı vardır; Role alanı yine de taşınır —
// middleware rol kontrolünü token üzerinden yapar, DB'ye gitmez.
type TokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest, admin giriş isteği.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse, başarılı girişte dönen token bilgisi.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // Unix saniye
	Username    string `json:"username"`
}

// AdminIdentity, /api/admin/me yanıtı.
type AdminIdentity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
