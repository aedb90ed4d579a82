package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Backend REST API.
	APIBaseURL string        `mapstructure:"API_BASE_URL"`
	APITimeout time.Duration `mapstructure:"API_TIMEOUT"`

	// Realtime channel delivering chat INSERT events.
	RealtimeURL      string        `mapstructure:"REALTIME_URL"`
	ChatPollInterval time.Duration `mapstructure:"CHAT_POLL_INTERVAL"`

	// Geocoding (Nominatim-compatible endpoint). The public service requires
	// an identifying User-Agent and at most one request per second.
	GeocodeBaseURL   string `mapstructure:"GEOCODE_BASE_URL"`
	GeocodeUserAgent string `mapstructure:"GEOCODE_USER_AGENT"`

	// Object storage for chat attachments and registration ID documents.
	StorageURL    string `mapstructure:"STORAGE_URL"`
	StorageBucket string `mapstructure:"STORAGE_BUCKET"`

	// Fixed travel fee (XAF) added to home-visit bookings.
	HomeTravelFee float64 `mapstructure:"HOME_TRAVEL_FEE"`

	// Default UI locale, "en" or "fr".
	Locale string `mapstructure:"LOCALE"`
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
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("API_TIMEOUT", 15*time.Second)
	viper.SetDefault("REALTIME_URL", "ws://localhost:8080/realtime/v1")
	viper.SetDefault("CHAT_POLL_INTERVAL", 5*time.Second)
	viper.SetDefault("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODE_USER_AGENT", "Bellavie/1.0 (hello@bellavie.cm)")
	viper.SetDefault("STORAGE_URL", "http://localhost:8080/storage/v1")
	viper.SetDefault("STORAGE_BUCKET", "bellavie-media")
	viper.SetDefault("HOME_TRAVEL_FEE", 1000.0)
	viper.SetDefault("LOCALE", "fr")

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
