package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	loggerMiddleware "absensiku_backend/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Setting up middlewares...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
