package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName  string
	Port     string
	GinMode  string
	LogLevel string

	DBDriver string
	DBDSN    string

	// Regeneration loop for auto-generated order codes.
	OrderCodeAttempts int
	OrderCodeBackoff  time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string

	// Warnings collects values that could not be parsed and fell back to defaults.
	Warnings []string
}

func Default() *Config {
	return &Config{
		AppName:           "Vihaa Vastra Sarees",
		Port:              "5000",
		GinMode:           "debug",
		LogLevel:          "info",
		DBDriver:          "sqlite",
		DBDSN:             "saree_crm.db",
		OrderCodeAttempts: 5,
		OrderCodeBackoff:  15 * time.Millisecond,
		RateLimitRPS:      20,
		RateLimitBurst:    40,
		CORSOrigins:       []string{"http://localhost:3000"},
	}
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) *Config {
	// .env is optional, a missing file is not an error
	_ = godotenv.Load(files...)
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, keeping defaults for unset keys.
func FromEnv(getenv func(string) string) *Config {
	cfg := Default()

	setString(getenv, "APP_NAME", &cfg.AppName)
	setString(getenv, "PORT", &cfg.Port)
	setString(getenv, "GIN_MODE", &cfg.GinMode)
	setString(getenv, "LOG_LEVEL", &cfg.LogLevel)
	setString(getenv, "DB_DRIVER", &cfg.DBDriver)
	setString(getenv, "DB_DSN", &cfg.DBDSN)
	cfg.DBDriver = strings.ToLower(cfg.DBDriver)

	if v := getenv("ORDER_CODE_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			cfg.warn("ORDER_CODE_ATTEMPTS", v)
		} else {
			cfg.OrderCodeAttempts = n
		}
	}
	if v := getenv("ORDER_CODE_BACKOFF"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			cfg.warn("ORDER_CODE_BACKOFF", v)
		} else {
			cfg.OrderCodeBackoff = d
		}
	}
	if v := getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			cfg.warn("RATE_LIMIT_RPS", v)
		} else {
			cfg.RateLimitRPS = f
		}
	}
	if v := getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			cfg.warn("RATE_LIMIT_BURST", v)
		} else {
			cfg.RateLimitBurst = n
		}
	}
	if v := getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSOrigins = origins
		}
	}

	return cfg
}

func (c *Config) warn(key, value string) {
	c.Warnings = append(c.Warnings, fmt.Sprintf("invalid %s=%q, using default", key, value))
}

func setString(getenv func(string) string, key string, dst *string) {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		*dst = v
	}
}
