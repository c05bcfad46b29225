// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "riskprofile_backend/internals/features/users/auth/dto"
	svc "riskprofile_backend/internals/features/users/auth/service"
	userDto "riskprofile_backend/internals/features/users/user/dto"
	userModel "riskprofile_backend/internals/features/users/user/model"
	helper "riskprofile_backend/internals/helpers"
	authMw "riskprofile_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

/* ========================= Register ========================= */

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := svc.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		Email:    req.Email,
		FullName: req.FullName,
		Password: hashed,
		IsActive: true,
	}
	user.SetDefaultValues()
	// keunikan email diserahkan ke unique index; balapan register duplikat
	// jadi 409, bukan 500
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[Auth.Register] DB.Create error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}
	resp := userDto.FromModel(&user)
	return helper.JsonCreated(c, "Registrasi berhasil", resp)
}

/* ========================= Login ========================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Printf("[Auth.Login] DB error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := svc.CheckPassword(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := svc.CreateAccessToken(user.ID, user.Role)
	if err != nil {
		log.Printf("[Auth.Login] token error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return helper.JsonOK(c, "Login berhasil", d.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

/* ========================= Me ========================= */

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := authMw.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	resp := userDto.FromModel(&user)
	return helper.JsonOK(c, "ok", resp)
}
