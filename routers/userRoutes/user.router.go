package userRoutes

import (
	userController "camp/controllers/user"
	userValidator "camp/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	app.Get("/userInfo/:email", userController.GetUserInfo)
	app.Get("/allUsers", userController.GetAllUsers)
	app.Get("/allInstructors", userController.GetAllInstructors)
	app.Post("/users", userValidator.CreateUser(), userController.CreateUser)

	app.Patch("/makeInstructor", userValidator.RoleFlag(), userController.MakeInstructor)
	app.Patch("/makeAdmin", userValidator.RoleFlag(), userController.MakeAdmin)

	// Seat reservations (pre-payment holds on the user document)
	app.Patch("/addClass", userValidator.Reservation(), userController.AddReservation)
	app.Patch("/deleteClass", userValidator.Reservation(), userController.RemoveReservation)
	app.Get("/enrolledClasses/:email", userController.GetEnrolledClasses)
}
