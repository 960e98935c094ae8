package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/leave/controller"
)

func LeaveUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeaveController(db)

	leave := r.Group("/leave-requests")
	leave.Post("/", ctl.Store)
	leave.Get("/", ctl.MyRequests)
	leave.Get("/quota", ctl.RemainingQuota)
}

func LeaveAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeaveAdminController(db)

	leave := r.Group("/leave-requests")
	leave.Get("/", ctl.Index)
	leave.Patch("/:id/approve", ctl.Approve)
	leave.Patch("/:id/reject", ctl.Reject)
}
