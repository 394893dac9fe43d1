package userController_test

import (
	"bytes"
	"camp/database"
	"camp/models"
	userRoutes "camp/routers/userRoutes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	return app
}

func seedUser(t *testing.T, user models.User) models.User {
	t.Helper()
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func reloadUser(t *testing.T, email string) models.User {
	t.Helper()
	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", email).First(&user).Error)
	return user
}

func TestCreateUser(t *testing.T) {
	app := setupTest(t)

	payload, _ := json.Marshal(fiber.Map{"email": "new@camp.io", "name": "New Student"})
	req := httptest.NewRequest("POST", "/users", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	got := reloadUser(t, "new@camp.io")
	assert.Equal(t, "New Student", got.Name)
	assert.False(t, got.IsInstructor)
	assert.False(t, got.IsAdmin)
}

func TestCreateUserDuplicateLeavesCollectionUnchanged(t *testing.T) {
	app := setupTest(t)
	seedUser(t, models.User{Email: "dup@camp.io", Name: "Original"})

	payload, _ := json.Marshal(fiber.Map{"email": "dup@camp.io", "name": "Impostor"})
	req := httptest.NewRequest("POST", "/users", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "already exists", body["message"])

	var count int64
	database.Database.Db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, "Original", reloadUser(t, "dup@camp.io").Name)
}

func TestCreateUserCannotSelfAssignRoles(t *testing.T) {
	app := setupTest(t)

	payload, _ := json.Marshal(fiber.Map{"email": "sneaky@camp.io", "isAdmin": true, "isInstructor": true})
	req := httptest.NewRequest("POST", "/users", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	got := reloadUser(t, "sneaky@camp.io")
	assert.False(t, got.IsAdmin)
	assert.False(t, got.IsInstructor)
}

func TestMakeInstructor(t *testing.T) {
	app := setupTest(t)
	seedUser(t, models.User{Email: "teach@camp.io"})

	resp, err := app.Test(httptest.NewRequest("PATCH", "/makeInstructor?email=teach@camp.io", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.True(t, reloadUser(t, "teach@camp.io").IsInstructor)
}

func TestMakeAdminUserNotFound(t *testing.T) {
	app := setupTest(t)

	resp, err := app.Test(httptest.NewRequest("PATCH", "/makeAdmin?email=ghost@camp.io", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user not found", body["error"])
}

func TestGetAllInstructorsFilters(t *testing.T) {
	app := setupTest(t)
	seedUser(t, models.User{Email: "a@camp.io", IsInstructor: true})
	seedUser(t, models.User{Email: "b@camp.io"})
	seedUser(t, models.User{Email: "c@camp.io", IsInstructor: true})

	resp, err := app.Test(httptest.NewRequest("GET", "/allInstructors", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var users []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 2)
}

func TestGetUserInfo(t *testing.T) {
	app := setupTest(t)
	seedUser(t, models.User{Email: "who@camp.io", Name: "Who"})

	resp, err := app.Test(httptest.NewRequest("GET", "/userInfo/who@camp.io", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "Who", user.Name)
}
