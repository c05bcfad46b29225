// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	d "riskprofile_backend/internals/features/users/user/dto"
	m "riskprofile_backend/internals/features/users/user/model"
	helper "riskprofile_backend/internals/helpers"
	authMw "riskprofile_backend/internals/middlewares/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

/* ========================= List ========================= */

func (ctl *UserController) List(c *fiber.Ctx) error {
	var users []m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).Order("id").Find(&users).Error; err != nil {
		log.Printf("[User.List] DB error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.JsonOK(c, "ok", d.FromModels(users))
}

/* ========================= Detail ========================= */

func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		log.Printf("[User.GetByID] DB error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	resp := d.FromModel(&user)
	return helper.JsonOK(c, "ok", resp)
}

/* ========================= Create ========================= */

func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req d.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := req.ToModel()
	user.Password = string(hashed)
	if err := ctl.DB.WithContext(c.UserContext()).Create(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[User.Create] DB.Create error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}
	resp := d.FromModel(user)
	return helper.JsonCreated(c, "User berhasil dibuat", resp)
}

/* ========================= Update ========================= */

func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req d.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = req.FullName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
		}
		user.Password = string(hashed)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		log.Printf("[User.Update] DB.Save error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui user")
	}
	resp := d.FromModel(&user)
	return helper.JsonUpdated(c, "User berhasil diperbarui", resp)
}

/* ========================= Delete ========================= */

func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// Mencegah admin menghapus dirinya sendiri
	if adminID, err := authMw.GetUserID(c); err == nil && adminID == int64(id) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa menghapus akun sendiri")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&m.UserModel{}, id)
	if res.Error != nil {
		log.Printf("[User.Delete] DB error: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": id})
}
