// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Go'da middleware bir fonksiyondur:
//
//	func(next http.Handler) http.Handler
//
// Zincir: CORS → Metrics → RequestLog → (RateLimit | AdminAuth) → Handler.
// Bir middleware hata yanıtı yazarsa next çağrılmaz, request orada durur.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/akinalp/milan/handlers"
	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
)

// TokenValidator, admin token'ını doğrulayan bağımlılık (AuthService karşılar).
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

// AuthMiddleware, admin JWT doğrulaması.
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// Require, geçerli bir admin token'ı zorunlu kılar.
//
// Header formatı: Authorization: Bearer <token>
// Token geçerliyse kimlik context'e eklenir; handler'lar
// handlers.AdminFromContext ile okur. Admin tek hesap olduğundan DB'ye gidilmez.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "invalid authorization format, use: Bearer <token>")
			return
		}

		claims, err := m.validator.ValidateAccessToken(tokenString)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		identity := &models.AdminIdentity{Username: claims.Username, Role: claims.Role}
		ctx := context.WithValue(r.Context(), handlers.AdminContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
