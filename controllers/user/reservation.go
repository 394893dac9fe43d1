package userController

import (
	"camp/database"
	"camp/middleware"
	"camp/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AddReservation appends a class id to the user's takenClass list,
// creating the list on first use. The hold is tentative until payment.
func AddReservation(c *fiber.Ctx) error {
	classID := c.Locals("classId").(string)
	userEmail := c.Locals("userEmail").(string)

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", userEmail).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, "user not found")
	}

	user.TakenClass = append(user.TakenClass, classID)
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving reservation for %s: %v", userEmail, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to add reservation!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, user)
}

// RemoveReservation drops every occurrence of the class id from the
// user's takenClass list. An absent or empty list is a no-op success.
func RemoveReservation(c *fiber.Ctx) error {
	classID := c.Locals("classId").(string)
	userEmail := c.Locals("userEmail").(string)

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", userEmail).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, "user not found")
	}

	user.TakenClass = removeAll(user.TakenClass, classID)
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error removing reservation for %s: %v", userEmail, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to remove reservation!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, user)
}

// GetEnrolledClasses resolves the user's confirmed enrollments against
// the class catalog. Ids with no matching class are silently dropped.
func GetEnrolledClasses(c *fiber.Ctx) error {
	email := c.Params("email")

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, "user not found")
	}

	if len(user.EnrolledClass) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, []models.Class{})
	}

	var classes []models.Class
	if err := db.Where("class_id IN ? AND is_deleted = false", []string(user.EnrolledClass)).Find(&classes).Error; err != nil {
		log.Printf("Error fetching enrolled classes for %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to fetch enrolled classes!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, classes)
}

func removeAll(list datatypes.JSONSlice[string], classID string) datatypes.JSONSlice[string] {
	kept := make(datatypes.JSONSlice[string], 0, len(list))
	for _, id := range list {
		if id != classID {
			kept = append(kept, id)
		}
	}
	return kept
}
