package adminRoutes

import (
	adminController "camp/controllers/admin"
	"camp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	app.Get("/adminStats", middleware.JWTMiddleware, adminController.DashboardStats)
}
