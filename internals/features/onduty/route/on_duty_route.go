package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/onduty/controller"
)

func OnDutyUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewOnDutyController(db)

	onduty := r.Group("/on-duties")
	onduty.Post("/", ctl.Store)
	onduty.Get("/", ctl.MyRequests)
}

func OnDutyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewOnDutyController(db)

	onduty := r.Group("/on-duties")
	onduty.Get("/", ctl.Index)
	onduty.Patch("/:id/approve", ctl.Approve)
	onduty.Patch("/:id/reject", ctl.Reject)
	onduty.Delete("/:id", ctl.Destroy)
}
