package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/checkin/controller"
	"absensiku_backend/internals/middlewares"
)

// Rute karyawan (sudah melewati AuthMiddleware)
func CheckinUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCheckinController(db)

	attendance := r.Group("/attendance")
	attendance.Post("/check-in", middlewares.CheckinRateLimiter(), ctl.CheckIn)
	attendance.Post("/check-out", ctl.CheckOut)
	attendance.Get("/history", ctl.History)
}

// Rute admin (sudah melewati AuthMiddleware + IsAdmin)
func CheckinAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCheckinAdminController(db)

	attendance := r.Group("/attendance")
	attendance.Get("/logs", ctl.Logs)
	attendance.Get("/daily", ctl.DailyAttendance)
	attendance.Post("/manual", ctl.ManualUpsert)
	attendance.Delete("/reset-today/:user_id", ctl.ResetToday)
}
