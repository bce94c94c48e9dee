package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// ElevenLabs outbound-call credentials.
	ElevenLabsAPIKey   string `mapstructure:"ELEVENLABS_API_KEY"`
	AgentID            string `mapstructure:"AGENT_ID"`
	AgentPhoneNumberID string `mapstructure:"AGENT_PHONE_NUMBER_ID"`

	// Gemini API key for briefing refinement.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// External calendar webhook endpoints (both optional).
	CheckAvailabilityURL string `mapstructure:"CHECK_AVAILABILITY_URL"`
	ConfirmBookingURL    string `mapstructure:"CONFIRM_BOOKING_URL"`

	// Downstream relay for booking confirmations (optional).
	BookingRelayURL string `mapstructure:"BOOKING_RELAY_URL"`

	// Catalog and preference files.
	ProvidersPath   string `mapstructure:"PROVIDERS_PATH"`
	PreferencesPath string `mapstructure:"PREFERENCES_PATH"`

	// Scoring profile: "linear" or "weighted".
	ScoringProfile string `mapstructure:"SCORING_PROFILE"`

	// Default ranking preferences (deployment profile).
	DefaultMaxDistance   float64 `mapstructure:"DEFAULT_MAX_DISTANCE"`
	DefaultMinRating     float64 `mapstructure:"DEFAULT_MIN_RATING"`
	DefaultPreferredTime string  `mapstructure:"DEFAULT_PREFERRED_TIME"`

	// Redis configuration (optional match cache).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
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
	viper.SetDefault("PROVIDERS_PATH", "providers.json")
	viper.SetDefault("PREFERENCES_PATH", "user_preferences.json")
	viper.SetDefault("SCORING_PROFILE", "linear")
	viper.SetDefault("DEFAULT_MAX_DISTANCE", 5.0)
	viper.SetDefault("DEFAULT_MIN_RATING", 4.0)
	viper.SetDefault("DEFAULT_PREFERRED_TIME", "morning")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// ValidateRequired fails startup when the orchestrator's required credentials
// are missing, rather than deferring the failure to the first request.
func ValidateRequired() {
	var missing []string
	if AppConfig.ElevenLabsAPIKey == "" {
		missing = append(missing, "ELEVENLABS_API_KEY")
	}
	if AppConfig.AgentID == "" {
		missing = append(missing, "AGENT_ID")
	}
	if AppConfig.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if len(missing) > 0 {
		log.Fatalf("Missing required env vars: %s", strings.Join(missing, ", "))
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
