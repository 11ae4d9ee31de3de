package main

import (
	"log"
	"os"

	"diagnostik-backend/captcha"
	"diagnostik-backend/controllers"
	"diagnostik-backend/database"
	"diagnostik-backend/middlewares"
	"diagnostik-backend/routes"
	"diagnostik-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// ---- Database
	database.Connect()
	database.AutoMigrate()

	// ---- Limits (configurable via env)
	// Fiber default BodyLimit is 4 * 1024 * 1024 bytes if unset (per docs).
	// We allow overriding with BODY_LIMIT_BYTES or BODY_LIMIT_MB.
	bodyLimitBytes := utils.EnvInt("BODY_LIMIT_BYTES", 0)
	if bodyLimitBytes <= 0 {
		bodyLimitBytes = utils.EnvInt("BODY_LIMIT_MB", 4) * 1024 * 1024
	}

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.ErrorHandler,
		BodyLimit:    bodyLimitBytes,
	})

	// ---- CORS
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: false, // using Bearer tokens, not cookies
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	// ---- Wiring
	store := database.NewSubmissionStore(database.DB)
	verifier := captcha.New(os.Getenv("CAPTCHA_SECRET_KEY"))
	submissions := controllers.NewSubmissionController(store, verifier)
	admin := controllers.NewAdminController(store)

	routes.Register(app, submissions, admin)

	// ---- Start
	port := utils.EnvStr("PORT", "8080")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
