package paymentRoutes

import (
	paymentController "camp/controllers/payment"
	"camp/middleware"
	paymentValidator "camp/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	// Both payment endpoints sit behind the bearer gate
	app.Post("/create-payment-intent", middleware.JWTMiddleware, paymentValidator.CreateIntent(), paymentController.CreatePaymentIntent)
	app.Post("/payments", middleware.JWTMiddleware, paymentValidator.ConfirmPayment(), paymentController.ConfirmPayment)
}
