package userValidator

import (
	"camp/middleware"
	"camp/models"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// CreateUser validator middleware
func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.User)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid request body!"})
		}

		errors := make(map[string]string)

		// Validate Email
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Role flags and enrollment lists are never client-settable at creation
		reqData.IsInstructor = false
		reqData.IsAdmin = false
		reqData.TakenClass = nil
		reqData.EnrolledClass = nil

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// RoleFlag validates the email query param for makeInstructor/makeAdmin
func RoleFlag() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := strings.TrimSpace(c.Query("email"))
		if email == "" || !isValidEmail(email) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid email!"})
		}
		return c.Next()
	}
}

// Reservation validates the classId/userEmail query params for the
// reservation add/remove endpoints
func Reservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classID := strings.TrimSpace(c.Query("classId"))
		userEmail := strings.TrimSpace(c.Query("userEmail"))

		errors := make(map[string]string)

		if classID == "" {
			errors["classId"] = "Class ID is required!"
		}
		if userEmail == "" || !isValidEmail(userEmail) {
			errors["userEmail"] = "Invalid user email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("classId", classID)
		c.Locals("userEmail", userEmail)
		return c.Next()
	}
}
