package paymentValidator

import (
	"camp/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateIntent validator middleware
func CreateIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Price float64 `json:"price" validate:"required,gt=0"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid request body!"})
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"price": "Price must be greater than 0!"})
		}

		c.Locals("validatedIntent", reqData)
		return c.Next()
	}
}

// ConfirmPayment validator middleware
func ConfirmPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email         string  `json:"email" validate:"required,email"`
			ClassID       string  `json:"classId" validate:"required"`
			ClassName     string  `json:"className"`
			Price         float64 `json:"price" validate:"required,gt=0"`
			TransactionID string  `json:"transactionId" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid request body!"})
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
