package userController

import (
	"camp/database"
	"camp/middleware"
	"camp/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetUserInfo returns a single user looked up by email.
func GetUserInfo(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = false", email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, "user not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, user)
}

// GetAllUsers lists every registered user.
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_deleted = false").Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to fetch users!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, users)
}

// GetAllInstructors lists users carrying the instructor flag.
func GetAllInstructors(c *fiber.Ctx) error {
	var instructors []models.User
	if err := database.Database.Db.Where("is_instructor = ? AND is_deleted = false", true).Find(&instructors).Error; err != nil {
		log.Printf("Error fetching instructors: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to fetch instructors!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, instructors)
}

// CreateUser registers a user document. A duplicate email is not an
// error for the frontend: it gets a plain "already exists" message and
// the collection stays unchanged.
func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid request data!"})
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"message": "already exists"})
	}

	if err := db.Create(reqData).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to create user!"})
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, reqData)
}

// setRoleFlag flips a single boolean role column on the user row.
func setRoleFlag(c *fiber.Ctx, column string) error {
	email := c.Query("email")

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, "user not found")
	}

	if err := db.Model(&user).Update(column, true).Error; err != nil {
		log.Printf("Error updating %s for %s: %v", column, email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to update user!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, user)
}

// MakeInstructor grants the instructor role.
func MakeInstructor(c *fiber.Ctx) error {
	return setRoleFlag(c, "is_instructor")
}

// MakeAdmin grants the admin role.
func MakeAdmin(c *fiber.Ctx) error {
	return setRoleFlag(c, "is_admin")
}
