package classValidator

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

// AddClass validator middleware
func AddClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Class)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid request body!"})
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["className"] = "Class name is required!"
		}
		if reqData.AvailableSeat < 0 {
			errors["availableSeat"] = "Available seats cannot be negative!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.InstructorEmail == "" || !isValidEmail(reqData.InstructorEmail) {
			errors["instructorEmail"] = "Invalid instructor email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

// ClassID validates the :id path param
func ClassID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classID := strings.TrimSpace(c.Params("id"))
		if classID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Class ID is required!"})
		}

		c.Locals("classId", classID)
		return c.Next()
	}
}

// UpdateStatus validates the classId/status query params
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		classID := strings.TrimSpace(c.Query("classId"))
		status := strings.TrimSpace(c.Query("status"))

		errors := make(map[string]string)

		if classID == "" {
			errors["classId"] = "Class ID is required!"
		}
		switch status {
		case models.ClassStatusPending, models.ClassStatusApproved, models.ClassStatusDenied:
		default:
			errors["status"] = "Status must be pending, approved or denied!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("classId", classID)
		c.Locals("status", status)
		return c.Next()
	}
}

// Feedback validator middleware
func Feedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassID  string `json:"classId"`
			Feedback string `json:"feedback"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid request body!"})
		}

		if strings.TrimSpace(reqData.ClassID) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"classId": "Class ID is required!"})
		}

		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}
