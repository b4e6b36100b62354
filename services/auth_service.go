// Package services, business logic katmanını barındırır.
//
// Handler (HTTP) ile Repository (DB) arasında oturan katmandır:
//   - Doğrulama ve iş kuralları
//   - Resim yaşam döngüsü (eski görselin depodan silinmesi)
//   - Bildirimler (email, WebSocket)
//
// Service http.Request/Response bilmez, doğrudan SQL çalıştırmaz.
package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
)

// tokenIssuer, JWT "iss" claim'i.
const tokenIssuer = "milan"

// AuthService, admin girişi ve token doğrulama.
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

type authService struct {
	username     string
	passwordHash []byte
	jwtSecret    []byte
	tokenExpiry  time.Duration
	now          func() time.Time
}

// NewAuthService, constructor.
//
// Back office'in tek hesabı vardır: username config'den gelir (küçük harf),
// passwordHash bcrypt hash'idir. Düz şifre verilmişse main başlangıçta hash'ler.
func NewAuthService(username, passwordHash, jwtSecret string, tokenExpiry time.Duration) AuthService {
	return &authService{
		username:     strings.ToLower(strings.TrimSpace(username)),
		passwordHash: []byte(passwordHash),
		jwtSecret:    []byte(jwtSecret),
		tokenExpiry:  tokenExpiry,
		now:          time.Now,
	}
}

// HashPassword, admin şifresi için bcrypt hash üretir (cost=12).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(password)), 12)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Login, kullanıcı adı ve şifreyi kontrol eder, başarılıysa access token üretir.
//
// Kullanıcı adı trim + küçük harf, şifre trim'lenerek karşılaştırılır.
// Yanlış kullanıcı adı ve yanlış şifre aynı hatayı döner.
func (s *authService) Login(_ context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", pkg.ErrBadRequest)
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// Kullanıcı adı yanlış olsa da bcrypt çalışır; cevap süresi ipucu vermez.
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return nil, fmt.Errorf("%w: invalid username or password", pkg.ErrUnauthorized)
	}

	now := s.now()
	expiresAt := now.Add(s.tokenExpiry)
	claims := &models.TokenClaims{
		Username: s.username,
		Role:     models.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &models.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
		Username:    s.username,
	}, nil
}

// ValidateAccessToken, JWT access token'ı doğrular ve claims'i döner.
// Yalnızca admin rolü taşıyan token'lar geçerlidir.
func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}
	if claims.Role != models.AdminRole {
		return nil, fmt.Errorf("%w: admin role required", pkg.ErrForbidden)
	}
	return claims, nil
}
