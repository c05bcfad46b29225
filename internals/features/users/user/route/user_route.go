package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"riskprofile_backend/internals/constants"
	userCtl "riskprofile_backend/internals/features/users/user/controller"
	authMw "riskprofile_backend/internals/middlewares/auth"
)

// UserRoutes — CRUD user, hanya untuk super admin.
func UserRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	ctl := userCtl.New(db, v)

	users := app.Group("/users",
		authMw.AuthMiddleware(db),
		authMw.RequireRoles(constants.RoleSuperAdmin),
	)
	users.Get("/", ctl.List)
	users.Get("/:id", ctl.GetByID)
	users.Post("/", ctl.Create)
	users.Put("/:id", ctl.Update)
	users.Delete("/:id", ctl.Delete)
}
