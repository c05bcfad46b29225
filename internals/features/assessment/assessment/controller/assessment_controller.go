// file: internals/features/assessment/assessment/controller/assessment_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "riskprofile_backend/internals/features/assessment/assessment/dto"
	repo "riskprofile_backend/internals/features/assessment/assessment/repository"
	svc "riskprofile_backend/internals/features/assessment/assessment/service"
	helper "riskprofile_backend/internals/helpers"
	authMw "riskprofile_backend/internals/middlewares/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type AssessmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AssessmentController {
	return &AssessmentController{DB: db, Validate: v}
}

/* ========================= Calculate ========================= */

// Calculate — POST /assessment/calculate
// Submit penilaian: hitung skor + simpan (ganti submission lama untuk
// periode & unit type yang sama). Response mengikuti kontrak lama:
// {id, final_score, final_rating, table_data}.
func (ctl *AssessmentController) Calculate(c *fiber.Ctx) error {
	userID, err := authMw.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req d.CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	result, err := svc.Calculate(c.UserContext(), ctl.DB, userID, &req)
	if err != nil {
		// submit ganda yang lolos advisory lock mentok di unique index
		// triple → 409, silakan submit ulang
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Penilaian untuk periode ini sedang diproses, coba lagi")
		}
		// kegagalan internal lain = pesan generik, tanpa detail parsial
		log.Printf("[Assessment.Calculate] user=%d period=%d unit=%s err: %v",
			userID, req.PeriodID, req.UnitType, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Calculation Failed")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

/* ========================= Get ========================= */

// Get — GET /assessment?period_id=&unit_type=
// Baca kembali hasil tersimpan milik user untuk satu periode & unit type.
func (ctl *AssessmentController) Get(c *fiber.Ctx) error {
	userID, err := authMw.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	periodID := c.QueryInt("period_id")
	if periodID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "period_id tidak valid")
	}
	unitType := strings.ToUpper(strings.TrimSpace(c.Query("unit_type", "LPEI")))
	if unitType != "LPEI" && unitType != "UUS" {
		return helper.JsonError(c, fiber.StatusBadRequest, "unit_type harus LPEI atau UUS")
	}

	header, details, err := repo.FindByTriple(ctl.DB.WithContext(c.UserContext()), userID, int64(periodID), unitType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Penilaian tidak ditemukan")
		}
		log.Printf("[Assessment.Get] DB error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penilaian")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"assessment": header,
		"details":    details,
	})
}
