package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/recap/controller"
)

func RecapUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewRecapController(db)
	r.Get("/attendance/calendar", ctl.MyCalendar)
}

func RecapAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewRecapController(db)

	recap := r.Group("/recap")
	recap.Get("/attendance", ctl.AttendanceRecap)
	recap.Get("/leave", ctl.LeaveRecap)
	recap.Get("/leave-days", ctl.LeaveDaysRecap)
	recap.Get("/dashboard", ctl.DashboardSummary)
	recap.Get("/employee/:user_id", ctl.EmployeeMonthDetail)
}
