package config

import (
	"errors"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

var LogFormats = []string{"text", "json"}

// Version is injected at build time with -ldflags "-X medical-barcode-api/config.Version=...".
var Version = ""

// Config holds the application configuration
type Config struct {
	// Server
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// CORS and rate limiting
	CorsAllowOrigins string
	RateLimitMax     int
	RateLimitWindow  time.Duration

	// Rendering
	RenderDPI int

	Version string
}

// Load reads the environment, seeded from the given .env files when they
// exist. Variables already set in the environment win over the files.
func Load(files ...string) *Config {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			logrus.Warnf("failed to load %s: %v", f, err)
		}
	}

	return &Config{
		Host:         getEnv("API_HOST", "0.0.0.0"),
		Port:         getEnvPort("API_PORT", 8000),
		Env:          getEnv("APP_ENV", "development"),
		ReadTimeout:  getEnvDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getEnvDuration("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  getEnvDuration("IDLE_TIMEOUT", 60*time.Second),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnvOneOf("LOG_FORMAT", "text", LogFormats),

		CorsAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		RateLimitMax:     getEnvInt("RATE_LIMIT_MAX", 600),
		RateLimitWindow:  getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),

		RenderDPI: getEnvInt("RENDER_DPI", 300),

		Version: getEnv("APP_VERSION", Version),
	}
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// SetupLogging configures the standard logrus logger
func (c *Config) SetupLogging() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets a positive integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
		logrus.Warnf("invalid %s %q, using %d", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvPort(key string, defaultValue int) int {
	port := getEnvInt(key, defaultValue)
	if port > 65535 {
		logrus.Warnf("invalid %s %d, using %d", key, port, defaultValue)
		return defaultValue
	}
	return port
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
		logrus.Warnf("invalid %s %q, using %s", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvOneOf(key, defaultValue string, allowed []string) string {
	value := strings.ToLower(getEnv(key, defaultValue))
	if !slices.Contains(allowed, value) {
		logrus.Warnf("invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return value
}
