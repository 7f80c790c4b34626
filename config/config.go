package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	// Static admin gate. Placeholder credentials, not a security
	// boundary: replace via env without touching the purchase handlers.
	AdminUsername string
	AdminPassword string

	EmailSender    string
	Password       string // SMTP App Password
	SendGridApiKey string // When set, mail goes through SendGrid instead of SMTP

	NotifyWebhookURL string // Optional JSON webhook for approval notifications

	UpiID           string
	SupportEmail    string
	NotificationTTL int // Seconds before the notification slot auto-clears

	PendingReminderCron string // Schedule for the stale-pending digest
	PendingMaxAgeHours  int
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
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "cybercourse.db"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),

		EmailSender:    getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:       getEnv("PASSWORD", "defaultSecret"),
		SendGridApiKey: getEnv("SENDGRID_API_KEY", ""),

		NotifyWebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),

		UpiID:           getEnv("UPI_ID", "cybercourse@upi"),
		SupportEmail:    getEnv("SUPPORT_EMAIL", "support@cybercourse.in"),
		NotificationTTL: getEnvInt("NOTIFICATION_TTL", 5),

		PendingReminderCron: getEnv("PENDING_REMINDER_CRON", "0 9 * * *"),
		PendingMaxAgeHours:  getEnvInt("PENDING_MAX_AGE_HOURS", 24),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AdminPassword == "admin" {
		log.Println("Warning: Using default admin credentials. Update them in your environment.")
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
