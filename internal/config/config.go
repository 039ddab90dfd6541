package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting, sourced from the environment.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	S3Bucket string
	S3Region string
}

// LoadConfig reads the environment, loading a local .env file first when one
// exists.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; deployments set real environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "hotel"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Hotel Reservations"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		S3Bucket: os.Getenv("S3_BUCKET_NAME"),
		S3Region: getEnv("S3_REGION", "us-east-1"),
	}

	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME must not be empty")
	}

	return cfg, nil
}

// GetDBConnString builds the Postgres connection string.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// EmailConfigured reports whether the SMTP settings are complete enough to
// send mail.
func (c *Config) EmailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPFromEmail != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
