package paymentController

import (
	"camp/database"
	"camp/middleware"
	"camp/models"
	"camp/utils"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreatePaymentIntent asks the payment provider for a charge intent and
// hands the client secret back to the frontend. Prices arrive in major
// units and are converted to integer minor units for the provider.
func CreatePaymentIntent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIntent").(*struct {
		Price float64 `json:"price" validate:"required,gt=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid request data!"})
	}

	amount := int64(math.Round(reqData.Price * 100))

	intent, err := utils.CreatePaymentIntent(amount)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to create payment intent!"})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"clientSecret": intent.ClientSecret})
}

// ConfirmPayment persists the payment record and moves the class id from
// the user's takenClass list to enrolledClass. Both writes run in one
// database transaction, and the provider transaction id is unique, so a
// retried confirmation can never double-apply.
func ConfirmPayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPayment").(*struct {
		Email         string  `json:"email" validate:"required,email"`
		ClassID       string  `json:"classId" validate:"required"`
		ClassName     string  `json:"className"`
		Price         float64 `json:"price" validate:"required,gt=0"`
		TransactionID string  `json:"transactionId" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, fiber.Map{"error": "Invalid request data!"})
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, "user not found")
	}

	// Idempotent replay: a transaction id that was already recorded must
	// not move state a second time.
	var existing models.Payment
	if err := db.Where("transaction_id = ? AND is_deleted = false", reqData.TransactionID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, fiber.Map{"error": "Transaction already processed!"})
	}

	payment := models.Payment{
		Email:         reqData.Email,
		ClassID:       reqData.ClassID,
		ClassName:     reqData.ClassName,
		Amount:        reqData.Price,
		TransactionID: reqData.TransactionID,
		Date:          time.Now(),
	}

	tx := db.Begin()

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error recording payment for %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to record payment!"})
	}

	taken := make(datatypes.JSONSlice[string], 0, len(user.TakenClass))
	for _, id := range user.TakenClass {
		if id != reqData.ClassID {
			taken = append(taken, id)
		}
	}
	user.TakenClass = taken
	user.EnrolledClass = append(user.EnrolledClass, reqData.ClassID)

	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		log.Printf("Error confirming enrollment for %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, fiber.Map{"error": "Failed to confirm enrollment!"})
	}

	tx.Commit()

	className := payment.ClassName
	if className == "" {
		var class models.Class
		if err := db.Where("class_id = ?", payment.ClassID).First(&class).Error; err == nil {
			className = class.Name
		}
	}

	// Confirmation email is best-effort and must not hold up the response.
	go utils.SendEnrollmentConfirmation(user.Email, user.Name, className, payment.Amount)

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"insertResult": payment,
		"updateResult": user,
	})
}
