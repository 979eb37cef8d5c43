package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DBPath             string
	LogLevel           string
	LeaderboardSize    int
	ResultWorkerCount  int
	ResultQueueSize    int
	ServerClock        bool
	SessionIdleTimeout time.Duration
	OracleAPIURL       string
	OracleAPIKey       string
	OracleModel        string
	CookieSecure       bool
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:sanskrit-spark.db"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		LeaderboardSize:    envIntOr("LEADERBOARD_SIZE", 5),
		ResultWorkerCount:  envIntOr("RESULT_WORKER_COUNT", 2),
		ResultQueueSize:    envIntOr("RESULT_QUEUE_SIZE", 64),
		ServerClock:        envBoolOr("QUIZ_SERVER_CLOCK", true),
		SessionIdleTimeout: envDurationOr("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		OracleAPIURL:       envOr("ORACLE_API_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
		OracleAPIKey:       os.Getenv("ORACLE_API_KEY"),
		OracleModel:        envOr("ORACLE_MODEL", "google/gemini-2.5-flash"),
		CookieSecure:       envBoolOr("COOKIE_SECURE", false),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("DB_PATH cannot be empty"))
	}
	if !logger.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q must be one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if c.LeaderboardSize < 1 || c.LeaderboardSize > 100 {
		errs = append(errs, fmt.Errorf("LEADERBOARD_SIZE must be between 1 and 100, got %d", c.LeaderboardSize))
	}
	if c.ResultWorkerCount < 1 {
		errs = append(errs, fmt.Errorf("RESULT_WORKER_COUNT must be positive, got %d", c.ResultWorkerCount))
	}
	if c.ResultQueueSize < 1 {
		errs = append(errs, fmt.Errorf("RESULT_QUEUE_SIZE must be positive, got %d", c.ResultQueueSize))
	}
	if c.SessionIdleTimeout < time.Minute {
		errs = append(errs, fmt.Errorf("SESSION_IDLE_TIMEOUT must be at least 1m, got %s", c.SessionIdleTimeout))
	}
	if c.OracleAPIURL != "" {
		if u, err := url.Parse(c.OracleAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("ORACLE_API_URL %q is not an absolute URL", c.OracleAPIURL))
		}
	}
	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
