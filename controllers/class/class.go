package classController

import (
	"camp/database"
	"camp/middleware"
	"camp/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllClasses lists the catalog ordered by popularity.
func GetAllClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("student_enrolled desc").
		Find(&classes).Error; err != nil {
		log.Printf("Error fetching classes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to fetch classes!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, classes)
}

// GetClass returns a single class by its canonical id.
func GetClass(c *fiber.Ctx) error {
	classID := c.Locals("classId").(string)

	var class models.Class
	if err := database.Database.Db.Where("class_id = ? AND is_deleted = false", classID).First(&class).Error; err != nil {
		return middleware.ErrorResponse(c, "class not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, class)
}

// GetInstructorClasses lists the classes taught by one instructor.
func GetInstructorClasses(c *fiber.Ctx) error {
	email := c.Params("email")

	var classes []models.Class
	if err := database.Database.Db.
		Where("instructor_email = ? AND is_deleted = false", email).
		Find(&classes).Error; err != nil {
		log.Printf("Error fetching classes for instructor %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to fetch classes!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, classes)
}

// AddClass creates a class document. The server assigns the canonical
// class id; new classes start pending until an admin approves them.
func AddClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedClass").(*models.Class)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid request data!"})
	}

	reqData.ClassID = uuid.NewString()
	reqData.Status = models.ClassStatusPending
	reqData.Feedback = ""
	reqData.StudentEnrolled = 0

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		log.Printf("Error saving class to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to create class!"})
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, reqData)
}

// ReserveSeat moves one seat from available to enrolled. The decrement
// runs as a single conditional UPDATE so two concurrent reservations
// cannot both take the last seat; zero rows affected means either the
// class is missing or it has no sellable seat. A class with exactly one
// seat left counts as fully booked.
func ReserveSeat(c *fiber.Ctx) error {
	classID := c.Locals("classId").(string)

	db := database.Database.Db

	res := db.Model(&models.Class{}).
		Where("class_id = ? AND is_deleted = false AND available_seat > 1", classID).
		Updates(map[string]interface{}{
			"available_seat":   gorm.Expr("available_seat - 1"),
			"student_enrolled": gorm.Expr("student_enrolled + 1"),
		})
	if res.Error != nil {
		log.Printf("Error reserving seat on class %s: %v", classID, res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to reserve seat!"})
	}

	if res.RowsAffected == 0 {
		if err := db.Where("class_id = ? AND is_deleted = false", classID).First(&models.Class{}).Error; err != nil {
			return middleware.ErrorResponse(c, "class not found")
		}
		return middleware.ErrorResponse(c, "seat not available")
	}

	var class models.Class
	if err := db.Where("class_id = ?", classID).First(&class).Error; err != nil {
		log.Printf("Error reloading class %s: %v", classID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to reserve seat!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, class)
}

// UpdateStatus overwrites the class status unconditionally.
func UpdateStatus(c *fiber.Ctx) error {
	classID := c.Locals("classId").(string)
	status := c.Locals("status").(string)

	db := database.Database.Db

	var class models.Class
	if err := db.Where("class_id = ? AND is_deleted = false", classID).First(&class).Error; err != nil {
		return middleware.ErrorResponse(c, "class not found")
	}

	if err := db.Model(&class).Update("status", status).Error; err != nil {
		log.Printf("Error updating status on class %s: %v", classID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to update status!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, class)
}

// UpdateFeedback overwrites the admin feedback text unconditionally.
func UpdateFeedback(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedFeedback").(*struct {
		ClassID  string `json:"classId"`
		Feedback string `json:"feedback"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid request data!"})
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("class_id = ? AND is_deleted = false", reqData.ClassID).First(&class).Error; err != nil {
		return middleware.ErrorResponse(c, "class not found")
	}

	if err := db.Model(&class).Update("feedback", reqData.Feedback).Error; err != nil {
		log.Printf("Error updating feedback on class %s: %v", reqData.ClassID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to update feedback!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, class)
}
