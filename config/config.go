package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // timezone validation must not depend on the host zoneinfo

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task scheduling specifics
	GoogleCalendar GoogleCalendarConfig
	Extractor      ExtractorConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath      string
	CalendarID           string
	Timezone             string // IANA name, also used to resolve relative dates
	EventHour            int
	EventDurationMinutes int
}

type ExtractorConfig struct {
	MaxInputBytes int
	CacheSize     int
	CacheTTL      time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in paths (default ./config, ., /etc/app/).
func Load(paths ...string) (*Config, error) {
	viper.Reset()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./config", ".", "/etc/app/"}
	}
	for _, p := range paths {
		viper.AddConfigPath(p)
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	cfg.GoogleCalendar.EventHour = viper.GetInt("google_calendar.event_hour")
	cfg.GoogleCalendar.EventDurationMinutes = viper.GetInt("google_calendar.event_duration_minutes")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Extractor
	cfg.Extractor.MaxInputBytes = viper.GetInt("extractor.max_input_bytes")
	cfg.Extractor.CacheSize = viper.GetInt("extractor.cache_size")
	cfg.Extractor.CacheTTL = viper.GetDuration("extractor.cache_ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "Asia/Kolkata")
	viper.SetDefault("google_calendar.event_hour", 9)
	viper.SetDefault("google_calendar.event_duration_minutes", 60)

	viper.SetDefault("extractor.max_input_bytes", 1<<20) // 1 MiB
	viper.SetDefault("extractor.cache_size", 256)
	viper.SetDefault("extractor.cache_ttl", "10m")
}

func validate(cfg *Config) error {
	gc := cfg.GoogleCalendar
	if gc.EventHour < 0 || gc.EventHour > 23 {
		return fmt.Errorf("google_calendar.event_hour must be in [0, 23], got %d", gc.EventHour)
	}
	if gc.EventDurationMinutes <= 0 {
		return fmt.Errorf("google_calendar.event_duration_minutes must be positive, got %d", gc.EventDurationMinutes)
	}
	if _, err := time.LoadLocation(gc.Timezone); err != nil {
		return fmt.Errorf("google_calendar.timezone: %w", err)
	}
	if cfg.Extractor.MaxInputBytes < 0 {
		return fmt.Errorf("extractor.max_input_bytes must not be negative")
	}
	return nil
}
