package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisItineraryDB int    `mapstructure:"REDIS_ITINERARY_DB"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`

	// Gemini narrative generation.
	GeminiAPIKey            string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel             string `mapstructure:"GEMINI_MODEL"`
	NarrativeTimeoutSeconds int    `mapstructure:"NARRATIVE_TIMEOUT_SECONDS"`

	// Planner tunables. All times are minutes from midnight in the
	// event's local timezone.
	DayStartMinute   int `mapstructure:"DAY_START_MINUTE"`
	DayEndMinute     int `mapstructure:"DAY_END_MINUTE"`
	ArrivalMinute    int `mapstructure:"ARRIVAL_MINUTE"`
	DepartureMinute  int `mapstructure:"DEPARTURE_MINUTE"`
	MinGapMinutes    int `mapstructure:"MIN_GAP_MINUTES"`
	ItineraryTTLDays int `mapstructure:"ITINERARY_TTL_DAYS"`
	CatalogCacheTTL  int `mapstructure:"CATALOG_CACHE_TTL_SECONDS"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_ITINERARY_DB", 0)
	viper.SetDefault("REDIS_CACHE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("NARRATIVE_TIMEOUT_SECONDS", 4)
	viper.SetDefault("DAY_START_MINUTE", 540)  // 9:00 AM
	viper.SetDefault("DAY_END_MINUTE", 1260)   // 9:00 PM
	viper.SetDefault("ARRIVAL_MINUTE", 900)    // 3:00 PM on the arrival day
	viper.SetDefault("DEPARTURE_MINUTE", 720)  // 12:00 PM on the departure day
	viper.SetDefault("MIN_GAP_MINUTES", 30)
	viper.SetDefault("ITINERARY_TTL_DAYS", 30)
	viper.SetDefault("CATALOG_CACHE_TTL_SECONDS", 300)

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
