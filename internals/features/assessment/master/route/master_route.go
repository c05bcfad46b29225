package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	masterCtl "riskprofile_backend/internals/features/assessment/master/controller"
	authMw "riskprofile_backend/internals/middlewares/auth"
)

// MasterRoutes — data referensi untuk form penilaian.
func MasterRoutes(app *fiber.App, db *gorm.DB) {
	ctl := masterCtl.New(db)

	master := app.Group("/master", authMw.AuthMiddleware(db))
	master.Get("/risk-types", ctl.GetRiskTypes)
	master.Get("/periods", ctl.GetPeriods)
}
