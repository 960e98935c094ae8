package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "absensiku_backend/internals/features/analytics/route"
	checkinRoute "absensiku_backend/internals/features/attendance/checkin/route"
	recapRoute "absensiku_backend/internals/features/attendance/recap/route"
	holidayRoute "absensiku_backend/internals/features/holiday/route"
	leaveRoute "absensiku_backend/internals/features/leave/route"
	ondutyRoute "absensiku_backend/internals/features/onduty/route"
	authRoute "absensiku_backend/internals/features/users/auth/route"
	userRoute "absensiku_backend/internals/features/users/user/route"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang semua fitur:
//   - /api/login, /api/logout   → publik / token
//   - /api/u/...                → semua user login
//   - /api/a/...                → khusus admin
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)

	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	userRoute.UserProfileRoutes(user, db)
	checkinRoute.CheckinUserRoutes(user, db)
	recapRoute.RecapUserRoutes(user, db)
	leaveRoute.LeaveUserRoutes(user, db)
	ondutyRoute.OnDutyUserRoutes(user, db)
	holidayRoute.HolidayUserRoutes(user, db)

	admin := api.Group("/a", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin())
	userRoute.UserAdminRoutes(admin, db)
	checkinRoute.CheckinAdminRoutes(admin, db)
	recapRoute.RecapAdminRoutes(admin, db)
	leaveRoute.LeaveAdminRoutes(admin, db)
	ondutyRoute.OnDutyAdminRoutes(admin, db)
	holidayRoute.HolidayAdminRoutes(admin, db)
	analyticsRoute.AnalyticsAdminRoutes(admin, db)
}
