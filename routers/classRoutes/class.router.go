package classRoutes

import (
	classController "camp/controllers/class"
	classValidator "camp/validators/class"

	"github.com/gofiber/fiber/v2"
)

func SetupClassRoutes(app *fiber.App) {
	app.Get("/allClasses", classController.GetAllClasses)
	app.Get("/aClass/:id", classValidator.ClassID(), classController.GetClass)
	app.Get("/classes/:email", classController.GetInstructorClasses)

	app.Post("/addClass", classValidator.AddClass(), classController.AddClass)
	app.Patch("/updateClass/:id", classValidator.ClassID(), classController.ReserveSeat)

	// Admin metadata updates
	app.Patch("/updateStatus", classValidator.UpdateStatus(), classController.UpdateStatus)
	app.Patch("/feedback", classValidator.Feedback(), classController.UpdateFeedback)
}
