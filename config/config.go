package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisScheduleCacheDB int    `mapstructure:"REDIS_SCHEDULE_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Booking engine settings. Slot step and horizon are configuration,
	// not constants baked into the algorithms.
	SlotStepMin        int `mapstructure:"SLOT_STEP_MIN"`
	BookingHorizonDays int `mapstructure:"BOOKING_HORIZON_DAYS"`
	ReminderLeadMin    int `mapstructure:"REMINDER_LEAD_MIN"`

	// Salon operating hours: weekday name -> "HH:MM-HH:MM" ranges.
	SalonHours map[string][]string `mapstructure:"SALON_HOURS"`

	// Firebase service account for FCM pushes.
	FirebaseCredentialsPath string `mapstructure:"FIREBASE_CREDENTIALS_PATH"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SCHEDULE_CACHE_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("SLOT_STEP_MIN", 60)
	viper.SetDefault("BOOKING_HORIZON_DAYS", 30)
	viper.SetDefault("REMINDER_LEAD_MIN", 120)
	viper.SetDefault("SALON_HOURS", map[string][]string{
		"monday":    {"09:00-20:00"},
		"tuesday":   {"09:00-20:00"},
		"wednesday": {"09:00-20:00"},
		"thursday":  {"09:00-20:00"},
		"friday":    {"09:00-20:00"},
		"saturday":  {"09:00-16:00"},
	})
	viper.SetDefault("FIREBASE_CREDENTIALS_PATH", "serviceAccountKey.json")

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
