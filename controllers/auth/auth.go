package authController

import (
	"camp/middleware"
	"log"

	"github.com/gofiber/fiber/v2"
)

// IssueToken signs a bearer token for the posted user payload.
func IssueToken(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid request body!"})
	}
	if reqData.Email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Email is required!"})
	}

	token, err := middleware.GenerateJWT(reqData.Email, reqData.Name)
	if err != nil {
		log.Printf("Error signing token for %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to issue token!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"token": token})
}
