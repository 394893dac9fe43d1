package utils

import (
	"camp/database"
	"camp/models"
	"log"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
)

// logJanitor logs janitor events with timestamp
func logJanitor(message string) {
	log.Printf("[RESERVATION-JANITOR %s] %s", time.Now().Format(time.RFC3339), message)
}

// ProcessDeniedReservations strips reservations for denied classes out of
// every user's takenClass list. A denied class can no longer be paid for,
// so keeping the hold around only blocks the student's checkout.
func ProcessDeniedReservations() {
	db := database.Database.Db

	var deniedIDs []string
	if err := db.Model(&models.Class{}).
		Where("status = ? AND is_deleted = false", models.ClassStatusDenied).
		Pluck("class_id", &deniedIDs).Error; err != nil {
		logJanitor("Error fetching denied classes: " + err.Error())
		return
	}
	if len(deniedIDs) == 0 {
		logJanitor("No denied classes, nothing to sweep")
		return
	}

	denied := make(map[string]bool, len(deniedIDs))
	for _, id := range deniedIDs {
		denied[id] = true
	}

	var users []models.User
	if err := db.Where("is_deleted = false").Find(&users).Error; err != nil {
		logJanitor("Error fetching users: " + err.Error())
		return
	}

	swept := 0
	for _, user := range users {
		kept := make(datatypes.JSONSlice[string], 0, len(user.TakenClass))
		for _, id := range user.TakenClass {
			if !denied[id] {
				kept = append(kept, id)
			}
		}
		if len(kept) == len(user.TakenClass) {
			continue
		}

		user.TakenClass = kept
		if err := db.Save(&user).Error; err != nil {
			logJanitor("Error sweeping reservations for " + user.Email + ": " + err.Error())
			continue
		}
		swept++
	}

	logJanitor("Sweep complete, users updated: " + strconv.Itoa(swept))
}

// InitializeReservationJanitor sets up the daily reservation sweep
func InitializeReservationJanitor() *cron.Cron {
	logJanitor("Initializing reservation janitor...")

	c := cron.New()

	// Run daily at 3 AM, well outside enrollment hours
	c.AddFunc("0 3 * * *", func() {
		logJanitor("Running daily denied-class reservation sweep...")
		ProcessDeniedReservations()
	})

	c.Start()
	logJanitor("Reservation janitor started - runs daily at 3 AM")
	return c
}
