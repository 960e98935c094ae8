package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/users/auth/controller"
	"absensiku_backend/internals/middlewares"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	api.Post("/logout", authMiddleware.AuthMiddleware(db), ctl.Logout)
}
