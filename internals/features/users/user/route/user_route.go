package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/users/user/controller"
)

func UserProfileRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewProfileController(db)

	profile := r.Group("/profile")
	profile.Get("/", ctl.Me)
	profile.Put("/", ctl.UpdateProfile)
	profile.Patch("/password", ctl.ChangePassword)
}

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserAdminController(db)

	users := r.Group("/users")
	users.Get("/", ctl.Index)
	users.Get("/positions", ctl.Positions)
	users.Post("/", ctl.Store)
	users.Get("/:id", ctl.Show)
	users.Put("/:id", ctl.Update)
	users.Patch("/:id/password", ctl.SetPassword)
	users.Post("/:id/revoke-sessions", ctl.RevokeSessions)
	users.Delete("/:id", ctl.Destroy)
}
