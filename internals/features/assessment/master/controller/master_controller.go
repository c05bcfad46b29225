// file: internals/features/assessment/master/controller/master_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "riskprofile_backend/internals/features/assessment/master/dto"
	m "riskprofile_backend/internals/features/assessment/master/model"
	helper "riskprofile_backend/internals/helpers"
)

type MasterController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *MasterController {
	return &MasterController{DB: db}
}

// GetRiskTypes — GET /master/risk-types?unit_type=LPEI|UUS
// Daftar kategori risiko + bobot sesuai unit type (default LPEI).
func (ctl *MasterController) GetRiskTypes(c *fiber.Ctx) error {
	unitType := strings.ToUpper(strings.TrimSpace(c.Query("unit_type", "LPEI")))
	if unitType != "LPEI" && unitType != "UUS" {
		return helper.JsonError(c, fiber.StatusBadRequest, "unit_type harus LPEI atau UUS")
	}

	q := ctl.DB.WithContext(c.UserContext()).Order("id")
	if unitType == "UUS" {
		q = q.Where("is_uus = ?", true)
	} else {
		q = q.Where("is_lpei = ?", true)
	}

	var riskTypes []m.RiskTypeModel
	if err := q.Find(&riskTypes).Error; err != nil {
		log.Printf("[Master.GetRiskTypes] DB error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil risk types")
	}

	out := make([]d.RiskTypeResponse, 0, len(riskTypes))
	for i := range riskTypes {
		out = append(out, d.RiskTypeFromModel(&riskTypes[i], unitType))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// GetPeriods — GET /master/periods
// Daftar periode penilaian, terbaru lebih dulu.
func (ctl *MasterController) GetPeriods(c *fiber.Ctx) error {
	var periods []m.PeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("year DESC, quarter DESC").Find(&periods).Error; err != nil {
		log.Printf("[Master.GetPeriods] DB error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil periods")
	}
	return c.Status(fiber.StatusOK).JSON(periods)
}
