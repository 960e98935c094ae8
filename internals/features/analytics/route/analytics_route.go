package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/analytics/controller"
)

func AnalyticsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAnalyticsController(db)

	analytics := r.Group("/analytics")
	analytics.Get("/employee/:user_id", ctl.EmployeeAnalytics)
}
