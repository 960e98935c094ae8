package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/holiday/controller"
)

func HolidayUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewHolidayController(db)
	r.Get("/holidays", ctl.Index)
}

func HolidayAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewHolidayController(db)

	holidays := r.Group("/holidays")
	holidays.Post("/", ctl.Store)
	holidays.Post("/import", ctl.Import)
	holidays.Delete("/:id", ctl.Destroy)
}
