// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"riskprofile_backend/internals/configs"
	authSvc "riskprofile_backend/internals/features/users/auth/service"
	userModel "riskprofile_backend/internals/features/users/user/model"
)

// AuthMiddleware memverifikasi bearer token, memastikan user masih aktif,
// lalu menyimpan user_id & role ke Locals untuk handler berikutnya.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		if configs.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		// verifikasi signature + exp + sub ada di token service
		userID, err := authSvc.ParseAccessToken(tokenString)
		if err != nil {
			log.Println("[ERROR] Token invalid:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token")
		}

		var user userModel.UserModel
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			log.Println("[ERROR] DB error saat cek user:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !user.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}

		c.Locals("user_id", user.ID)
		c.Locals("role", user.Role)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader == "" {
		return "", errors.New("Authorization header kosong")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Format Authorization harus 'Bearer <token>'")
	}
	return strings.TrimSpace(parts[1]), nil
}

// GetUserID mengambil user id yang sudah diset AuthMiddleware.
func GetUserID(c *fiber.Ctx) (int64, error) {
	id, ok := c.Locals("user_id").(int64)
	if !ok || id == 0 {
		return 0, errors.New("user_id tidak ditemukan di context")
	}
	return id, nil
}
