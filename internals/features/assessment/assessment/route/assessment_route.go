package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentCtl "riskprofile_backend/internals/features/assessment/assessment/controller"
	authMw "riskprofile_backend/internals/middlewares/auth"
)

// AssessmentRoutes — kalkulasi & pembacaan profil risiko (auth wajib).
func AssessmentRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	ctl := assessmentCtl.New(db, v)

	assessment := app.Group("/assessment", authMw.AuthMiddleware(db))
	assessment.Post("/calculate", ctl.Calculate)
	assessment.Get("/", ctl.Get)
}
