// config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything read from the environment at startup
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Mail   MailConfig
	OTP    OTPConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port           string `validate:"required,numeric"`
	AllowedOrigins []string
	RequestTimeout time.Duration
	BodyLimit      string `validate:"required"`
}

type MongoConfig struct {
	URI    string `validate:"omitempty,startswith=mongodb"`
	DBName string `validate:"required"`
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int `validate:"min=0"`
}

type MailConfig struct {
	Host     string `validate:"required,hostname_rfc1123"`
	Port     int    `validate:"min=1,max=65535"`
	User     string `validate:"omitempty,email"`
	Password string
	From     string `validate:"omitempty,email"`
}

type OTPConfig struct {
	// TTL of zero keeps a code valid until it is overwritten or consumed.
	TTL time.Duration `validate:"min=0"`
}

type LogConfig struct {
	Level string
}

// Load builds the configuration from environment variables. Nothing here is
// fatal: missing credentials surface as errors from the driver that needs them.
func Load() *Config {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = os.Getenv("MONGO_URI")
	}

	mailUser := getEnv("EMAIL_USER", "")

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "5000"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 0),
			BodyLimit:      getEnv("BODY_LIMIT", "100K"),
		},
		Mongo: MongoConfig{
			URI:    mongoURI,
			DBName: getEnv("DB_NAME", "inquiry"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			User:     mailUser,
			Password: getEnv("EMAIL_PASS", ""),
			From:     getEnv("FROM_EMAIL", mailUser),
		},
		OTP: OTPConfig{
			TTL: getEnvAsDuration("OTP_TTL", 0),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
