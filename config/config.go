package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	WebhookSecret     string `mapstructure:"WEBHOOK_SECRET"`

	// Business scheduling rules. Hours are wall-clock values in the
	// calendar's operating timezone.
	BusinessTimezone     string `mapstructure:"BUSINESS_TIMEZONE"`
	BusinessOpenHour     int    `mapstructure:"BUSINESS_OPEN_HOUR"`
	BusinessCloseHour    int    `mapstructure:"BUSINESS_CLOSE_HOUR"`
	SlotDurationMinutes  int    `mapstructure:"SLOT_DURATION_MINUTES"`
	ConflictToleranceSec int    `mapstructure:"CONFLICT_TOLERANCE_SEC"`
	DefaultPhoneRegion   string `mapstructure:"DEFAULT_PHONE_REGION"`

	// Calendar Directory (system of record for appointments).
	CalendarAPIBaseURL string `mapstructure:"CALENDAR_API_BASE_URL"`
	CalendarAPIKey     string `mapstructure:"CALENDAR_API_KEY"`
	CalendarID         string `mapstructure:"CALENDAR_ID"`

	// Contact Directory (CRM of record for person records).
	ContactAPIBaseURL string `mapstructure:"CONTACT_API_BASE_URL"`
	ContactAPIKey     string `mapstructure:"CONTACT_API_KEY"`

	// MongoDB (tool-call audit log).
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB       int    `mapstructure:"REDIS_CACHE_DB"`
	IdempotencyTTLSecs int    `mapstructure:"IDEMPOTENCY_TTL_SEC"`

	// Upstream keepalive probe schedule (cron spec).
	KeepaliveSchedule string `mapstructure:"KEEPALIVE_SCHEDULE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("WEBHOOK_SECRET", "")
	viper.SetDefault("BUSINESS_TIMEZONE", "America/New_York")
	viper.SetDefault("BUSINESS_OPEN_HOUR", 9)
	viper.SetDefault("BUSINESS_CLOSE_HOUR", 17)
	viper.SetDefault("SLOT_DURATION_MINUTES", 30)
	viper.SetDefault("CONFLICT_TOLERANCE_SEC", 60)
	viper.SetDefault("DEFAULT_PHONE_REGION", "US")
	viper.SetDefault("CALENDAR_API_BASE_URL", "")
	viper.SetDefault("CALENDAR_API_KEY", "")
	viper.SetDefault("CALENDAR_ID", "")
	viper.SetDefault("CONTACT_API_BASE_URL", "")
	viper.SetDefault("CONTACT_API_KEY", "")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "voxcal")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("IDEMPOTENCY_TTL_SEC", 300)
	viper.SetDefault("KEEPALIVE_SCHEDULE", "@every 5m")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
