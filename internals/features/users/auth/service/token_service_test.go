package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskprofile_backend/internals/configs"
)

func TestCreateAndParseAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	configs.JWTExpireMins = 30

	token, err := CreateAccessToken(42, "admin_erm")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	configs.JWTSecret = "test-secret"
	configs.JWTExpireMins = 30
	token, err := CreateAccessToken(42, "user")
	require.NoError(t, err)

	configs.JWTSecret = "secret-lain"
	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)
	return token
}

func TestParseAccessTokenExpired(t *testing.T) {
	configs.JWTSecret = "test-secret"

	// kedaluwarsa jauh melewati leeway → ditolak
	token := signTestToken(t, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(-5 * time.Minute).Unix(),
	})
	_, err := ParseAccessToken(token)
	assert.Error(t, err)

	// baru saja kedaluwarsa, masih dalam leeway clock skew → diterima
	token = signTestToken(t, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(-10 * time.Second).Unix(),
	})
	id, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseAccessTokenNumericSub(t *testing.T) {
	configs.JWTSecret = "test-secret"

	// token terbitan lama menulis sub sebagai angka
	token := signTestToken(t, jwt.MapClaims{
		"sub": 42,
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	id, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseAccessTokenBadSub(t *testing.T) {
	configs.JWTSecret = "test-secret"

	for _, sub := range []interface{}{"abc", "0", "-1", nil} {
		claims := jwt.MapClaims{"exp": time.Now().Add(time.Minute).Unix()}
		if sub != nil {
			claims["sub"] = sub
		}
		_, err := ParseAccessToken(signTestToken(t, claims))
		assert.Error(t, err, "sub=%v", sub)
	}
}

func TestCreateAccessTokenWithoutSecret(t *testing.T) {
	configs.JWTSecret = ""
	_, err := CreateAccessToken(42, "user")
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("rahasia-banget")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-banget", hashed)

	assert.NoError(t, CheckPassword(hashed, "rahasia-banget"))
	assert.Error(t, CheckPassword(hashed, "salah"))
}
