// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentRoute "riskprofile_backend/internals/features/assessment/assessment/route"
	masterRoute "riskprofile_backend/internals/features/assessment/master/route"
	authRoute "riskprofile_backend/internals/features/users/auth/route"
	userRoute "riskprofile_backend/internals/features/users/user/route"
	helper "riskprofile_backend/internals/helpers"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := helper.NewValidator()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, v)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db, v)

	log.Println("[INFO] Setting up MasterRoutes...")
	masterRoute.MasterRoutes(app, db)

	log.Println("[INFO] Setting up AssessmentRoutes...")
	assessmentRoute.AssessmentRoutes(app, db, v)
}
