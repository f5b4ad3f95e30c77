package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the server reads from the environment. It is
// loaded once in main and passed down; nothing else touches os.Getenv.
type Config struct {
	Port string
	Env  string

	JWTSecret    string
	JWTExpiresIn time.Duration

	// Registration is public by default, matching the original API, but
	// should be switched off once the first admin exists.
	AllowRegistration bool

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFromName string
	AdminEmail   string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	SeedAdminEmail    string
	SeedAdminPassword string
	SeedAdminName     string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// parseExpiry accepts Go durations ("168h") and the day shorthand the
// original used ("7d").
func parseExpiry(raw string, def time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	if strings.HasSuffix(raw, "d") {
		if days, err := strconv.Atoi(strings.TrimSuffix(raw, "d")); err == nil && days > 0 {
			return time.Duration(days) * 24 * time.Hour
		}
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return def
}

func Load() *Config {
	return &Config{
		Port: envOrDefault("PORT", "5000"),
		Env:  envOrDefault("APP_ENV", "development"),

		JWTSecret:    envOrDefault("JWT_SECRET", ""),
		JWTExpiresIn: parseExpiry(os.Getenv("JWT_EXPIRES_IN"), 7*24*time.Hour),

		AllowRegistration: envOrDefault("ALLOW_REGISTRATION", "true") != "false",

		SMTPHost:     envOrDefault("SMTP_HOST", ""),
		SMTPPort:     envOrDefault("SMTP_PORT", "587"),
		SMTPUsername: envOrDefault("SMTP_USERNAME", ""),
		SMTPPassword: envOrDefault("SMTP_PASSWORD", ""),
		SMTPFromName: envOrDefault("SMTP_FROM_NAME", "DevsFusion"),
		AdminEmail:   envOrDefault("CONTACT_ADMIN_EMAIL", ""),

		CloudinaryCloudName: envOrDefault("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    envOrDefault("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: envOrDefault("CLOUDINARY_API_SECRET", ""),

		SeedAdminEmail:    envOrDefault("ADMIN_EMAIL", ""),
		SeedAdminPassword: envOrDefault("ADMIN_PASSWORD", ""),
		SeedAdminName:     envOrDefault("ADMIN_NAME", "Admin"),
	}
}
