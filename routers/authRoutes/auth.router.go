package authRoutes

import (
	authController "camp/controllers/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/jwt", authController.IssueToken)
}
