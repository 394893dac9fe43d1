package userController_test

import (
	"camp/database"
	"camp/models"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestReservationRoundTrip(t *testing.T) {
	app := setupTest(t)
	seedUser(t, models.User{Email: "s@camp.io", TakenClass: datatypes.JSONSlice[string]{"existing"}})

	resp, err := app.Test(httptest.NewRequest("PATCH", "/addClass?classId=c1&userEmail=s@camp.io", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"existing", "c1"}, []string(reloadUser(t, "s@camp.io").TakenClass))

	resp, err = app.Test(httptest.NewRequest("PATCH", "/deleteClass?classId=c1&userEmail=s@camp.io", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"existing"}, []string(reloadUser(t, "s@camp.io").TakenClass))
}

func TestAddReservationCreatesListOnFirstUse(t *testing.T) {
	app := setupTest(t)
	seedUser(t, models.User{Email: "fresh@camp.io"})

	resp, err := app.Test(httptest.NewRequest("PATCH", "/addClass?classId=c1&userEmail=fresh@camp.io", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"c1"}, []string(reloadUser(t, "fresh@camp.io").TakenClass))
}

func TestAddReservationKeepsDuplicates(t *testing.T) {
	app := setupTest(t)
	seedUser(t, models.User{Email: "s@camp.io", TakenClass: datatypes.JSONSlice[string]{"c1"}})

	resp, err := app.Test(httptest.NewRequest("PATCH", "/addClass?classId=c1&userEmail=s@camp.io", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"c1", "c1"}, []string(reloadUser(t, "s@camp.io").TakenClass))
}

func TestRemoveReservationDropsAllMatches(t *testing.T) {
	app := setupTest(t)
	seedUser(t, models.User{Email: "s@camp.io", TakenClass: datatypes.JSONSlice[string]{"c1", "c2", "c1"}})

	resp, err := app.Test(httptest.NewRequest("PATCH", "/deleteClass?classId=c1&userEmail=s@camp.io", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"c2"}, []string(reloadUser(t, "s@camp.io").TakenClass))
}

func TestRemoveReservationWithoutListIsNoop(t *testing.T) {
	app := setupTest(t)
	seedUser(t, models.User{Email: "empty@camp.io"})

	resp, err := app.Test(httptest.NewRequest("PATCH", "/deleteClass?classId=c1&userEmail=empty@camp.io", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, reloadUser(t, "empty@camp.io").TakenClass)
}

func TestAddReservationUserNotFound(t *testing.T) {
	app := setupTest(t)

	resp, err := app.Test(httptest.NewRequest("PATCH", "/addClass?classId=c1&userEmail=ghost@camp.io", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user not found", body["error"])
}

func TestGetEnrolledClassesDropsUnknownIds(t *testing.T) {
	app := setupTest(t)

	class := models.Class{ClassID: uuid.NewString(), Name: "Archery", InstructorEmail: "i@camp.io"}
	require.NoError(t, database.Database.Db.Create(&class).Error)

	seedUser(t, models.User{
		Email:         "s@camp.io",
		EnrolledClass: datatypes.JSONSlice[string]{class.ClassID, "no-such-class"},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/enrolledClasses/s@camp.io", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var classes []models.Class
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&classes))
	require.Len(t, classes, 1)
	assert.Equal(t, "Archery", classes[0].Name)
}

func TestGetEnrolledClassesEmpty(t *testing.T) {
	app := setupTest(t)
	seedUser(t, models.User{Email: "s@camp.io"})

	resp, err := app.Test(httptest.NewRequest("GET", "/enrolledClasses/s@camp.io", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var classes []models.Class
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&classes))
	assert.Empty(t, classes)
}
