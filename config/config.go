package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	Timezone          string `mapstructure:"TIMEZONE"`
	SeedDemoData      bool   `mapstructure:"SEED_DEMO_DATA"`

	// Availability limits.
	AvailabilityMaxRangeDays int  `mapstructure:"AVAILABILITY_MAX_RANGE_DAYS"`
	AvailabilityCapWrites    bool `mapstructure:"AVAILABILITY_CAP_WRITES"`
	BookingMaxStayDays       int  `mapstructure:"BOOKING_MAX_STAY_DAYS"`

	// Payment gateway: "mock" or "stripe".
	PaymentGateway      string `mapstructure:"PAYMENT_GATEWAY"`
	StripeKey           string `mapstructure:"STRIPE_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	Currency            string `mapstructure:"CURRENCY"`

	// Redis configuration. An empty address disables the analytics cache.
	RedisAddr                string `mapstructure:"REDIS_ADDR"`
	RedisPassword            string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB             int    `mapstructure:"REDIS_CACHE_DB"`
	AnalyticsCacheTTLSeconds int    `mapstructure:"ANALYTICS_CACHE_TTL_SECONDS"`

	ReconcileCron  string `mapstructure:"RECONCILE_CRON"`
	MetricsEnabled bool   `mapstructure:"METRICS_ENABLED"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables still win through AutomaticEnv.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("TIMEZONE", "UTC")
	viper.SetDefault("SEED_DEMO_DATA", true)
	viper.SetDefault("AVAILABILITY_MAX_RANGE_DAYS", 365)
	viper.SetDefault("AVAILABILITY_CAP_WRITES", true)
	viper.SetDefault("BOOKING_MAX_STAY_DAYS", 365)
	viper.SetDefault("PAYMENT_GATEWAY", "mock")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	viper.SetDefault("CURRENCY", "usd")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("ANALYTICS_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("RECONCILE_CRON", "@every 15m")
	viper.SetDefault("METRICS_ENABLED", true)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location resolves TIMEZONE, falling back to UTC.
func Location() *time.Location {
	if AppConfig.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, using UTC", AppConfig.Timezone)
		return time.UTC
	}
	return loc
}

func AnalyticsCacheTTL() time.Duration {
	return time.Duration(AppConfig.AnalyticsCacheTTLSeconds) * time.Second
}
