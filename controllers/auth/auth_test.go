package authController_test

import (
	"bytes"
	"camp/config"
	authRoutes "camp/routers/authRoutes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) *fiber.App {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey:             "test-secret",
		TokenExpiryMinutes: 60,
	}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func TestIssueToken(t *testing.T) {
	app := setupTest(t)

	payload, _ := json.Marshal(fiber.Map{"email": "s@camp.io", "name": "Student"})
	req := httptest.NewRequest("POST", "/jwt", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body["token"])

	token, err := jwt.Parse(body["token"], func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "s@camp.io", claims["email"])

	// Fixed one-hour expiry
	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64(3600), exp-iat)
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	app := setupTest(t)

	payload, _ := json.Marshal(fiber.Map{"name": "Anon"})
	req := httptest.NewRequest("POST", "/jwt", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
