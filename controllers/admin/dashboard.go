package adminController

import (
	"camp/database"
	"camp/middleware"
	"camp/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// DashboardStats returns platform totals plus today's payment activity.
func DashboardStats(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, fiber.Map{"error": true, "message": "unauthorized access"})
	}

	db := database.Database.Db

	var requester models.User
	if err := db.Where("email = ? AND is_deleted = false", email).First(&requester).Error; err != nil {
		return middleware.ErrorResponse(c, "user not found")
	}
	if !requester.IsAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, fiber.Map{"error": "Access denied! Admin only."})
	}

	var totalUsers, totalInstructors, totalClasses, approvedClasses, totalPayments int64

	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.User{}).Where("is_deleted = ? AND is_instructor = ?", false, true).Count(&totalInstructors)
	db.Model(&models.Class{}).Where("is_deleted = ?", false).Count(&totalClasses)
	db.Model(&models.Class{}).Where("is_deleted = ? AND status = ?", false, models.ClassStatusApproved).Count(&approvedClasses)
	db.Model(&models.Payment{}).Where("is_deleted = ?", false).Count(&totalPayments)

	// Today's window
	dayStart := now.BeginningOfDay()
	dayEnd := now.EndOfDay()

	var paymentsToday int64
	var revenueToday float64
	db.Model(&models.Payment{}).
		Where("is_deleted = ? AND date BETWEEN ? AND ?", false, dayStart, dayEnd).
		Count(&paymentsToday)
	db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("is_deleted = ? AND date BETWEEN ? AND ?", false, dayStart, dayEnd).
		Scan(&revenueToday)

	// Recent payments
	type RecentPayment struct {
		Email     string    `json:"email"`
		ClassName string    `json:"className"`
		Amount    float64   `json:"amount"`
		Date      time.Time `json:"date"`
	}

	var recentPayments []models.Payment
	db.Where("is_deleted = ?", false).Order("date desc").Limit(5).Find(&recentPayments)

	recent := make([]RecentPayment, len(recentPayments))
	for i, p := range recentPayments {
		recent[i] = RecentPayment{
			Email:     p.Email,
			ClassName: p.ClassName,
			Amount:    p.Amount,
			Date:      p.Date,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"stats": fiber.Map{
			"totalUsers":       totalUsers,
			"totalInstructors": totalInstructors,
			"totalClasses":     totalClasses,
			"approvedClasses":  approvedClasses,
			"totalPayments":    totalPayments,
			"paymentsToday":    paymentsToday,
			"revenueToday":     revenueToday,
		},
		"recentPayments": recent,
	})
}
