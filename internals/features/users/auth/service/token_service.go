// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"riskprofile_backend/internals/configs"
)

// CreateAccessToken menerbitkan JWT HS256 dengan sub = user id.
func CreateAccessToken(userID int64, role string) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Duration(configs.JWTExpireMins) * time.Minute).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Toleransi clock skew saat memeriksa exp.
const expLeeway = 30 * time.Second

// ParseAccessToken memverifikasi signature & masa berlaku token lalu
// mengembalikan user id dari claim sub. Satu-satunya tempat token
// divalidasi; middleware auth memanggil fungsi ini.
func ParseAccessToken(tokenString string) (int64, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return 0, errors.New("JWT_SECRET belum diset")
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}); err != nil {
		return 0, err
	}
	if err := validateExpiry(claims, expLeeway); err != nil {
		return 0, err
	}
	return subjectUserID(claims)
}

func validateExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expVal, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("exp claim tidak ada atau bukan angka")
	}
	expTime := time.Unix(int64(expVal), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fmt.Errorf("token expired pada %s", expTime)
	}
	return nil
}

// sub kita tulis sebagai string, tapi terima juga angka untuk token
// terbitan lama.
func subjectUserID(claims jwt.MapClaims) (int64, error) {
	switch v := claims["sub"].(type) {
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return 0, errors.New("sub claim tidak valid")
		}
		return id, nil
	case float64:
		if v <= 0 {
			return 0, errors.New("sub claim tidak valid")
		}
		return int64(v), nil
	default:
		return 0, errors.New("sub claim tidak valid")
	}
}
