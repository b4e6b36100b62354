package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
)

const testSecret = "test-secret-test-secret-test-secret"

func newAuthFixture(t *testing.T) *authService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("chai123"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(" Admin ", string(hash), testSecret, time.Hour).(*authService)
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, &models.LoginRequest{Username: "ADMIN", Password: " chai123 "})
	require.NoError(t, err)
	assert.Equal(t, "admin", res.Username)

	claims, err := svc.ValidateAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.AdminRole, claims.Role)
	assert.Equal(t, res.ExpiresAt, claims.ExpiresAt.Unix())

	_, err = svc.Login(ctx, &models.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	_, err = svc.Login(ctx, &models.LoginRequest{Username: "owner", Password: "chai123"})
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	_, err = svc.Login(ctx, &models.LoginRequest{Username: "admin"})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestValidateAccessTokenExpired(t *testing.T) {
	svc := newAuthFixture(t)

	res, err := svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "chai123"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.ValidateAccessToken(res.AccessToken)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestValidateAccessTokenRejectsForeignTokens(t *testing.T) {
	svc := newAuthFixture(t)
	sign := func(secret string, claims *models.TokenClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	valid := func(role string) *models.TokenClaims {
		return &models.TokenClaims{
			Username: "admin",
			Role:     role,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	_, err := svc.ValidateAccessToken(sign("other-secret", valid(models.AdminRole)))
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	_, err = svc.ValidateAccessToken(sign(testSecret, valid("guest")))
	assert.ErrorIs(t, err, pkg.ErrForbidden)

	wrongIssuer := valid(models.AdminRole)
	wrongIssuer.Issuer = "someone-else"
	_, err = svc.ValidateAccessToken(sign(testSecret, wrongIssuer))
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	_, err = svc.ValidateAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword(" secret ")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))
}
