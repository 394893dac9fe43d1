package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	TokenExpiryMinutes int // expiry for POST /jwt tokens

	PaymentSecretKey string // payment provider secret key
	PaymentApiURL    string // payment provider base URL (overridable for tests)
	PaymentCurrency  string

	SendGridApiKey string
	EmailSender    string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "5000"),
		JWTKey: getEnv("ACCESS_TOKEN_SECRET", "defaultSecret"),

		TokenExpiryMinutes: getEnvInt("TOKEN_EXPIRY_MINUTES", 60),

		PaymentSecretKey: getEnv("PAYMENT_SECRET_KEY", "defaultSecret"),
		PaymentApiURL:    getEnv("PAYMENT_API_URL", "https://api.stripe.com/v1"),
		PaymentCurrency:  getEnv("PAYMENT_CURRENCY", "usd"),

		SendGridApiKey: getEnv("SENDGRID_API_KEY", "defaultSecret"),
		EmailSender:    getEnv("EMAIL_SENDER", "noreply@summercamp.io"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default ACCESS_TOKEN_SECRET. Update it in your environment.")
	}
	if AppConfig.PaymentSecretKey == "defaultSecret" {
		log.Println("Warning: Using default PAYMENT_SECRET_KEY. Payment intents will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
