package routes

import (
	"github.com/gofiber/fiber/v2"

	"diagnostik-backend/controllers"
	"diagnostik-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App, submissions *controllers.SubmissionController, admin *controllers.AdminController) {
	api := app.Group("/api")

	// Registered with All so the handler owns the 405 answer for other methods.
	api.All("/submit", submissions.Handle)

	// Admin endpoints (JWT auth, except login)
	adminGroup := api.Group("/admin")
	adminGroup.Post("/login", admin.Login)
	adminGroup.Use(middlewares.IsAuthenticatedHeader())
	adminGroup.Get("/submissions", admin.ListSubmissions)
}
