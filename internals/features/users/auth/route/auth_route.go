package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "riskprofile_backend/internals/features/users/auth/controller"
	middlewares "riskprofile_backend/internals/middlewares"
	authMw "riskprofile_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	ctl := authCtl.New(db, v)

	auth := app.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Get("/me", authMw.AuthMiddleware(db), ctl.Me)
}
