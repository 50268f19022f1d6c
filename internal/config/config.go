// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/joho/godotenv"
)

const (
	defaultAddr = ":8080"
	defaultUser = "local"
)

var defaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

type Config struct {
	DBPath      string
	Addr        string
	LogMode     string
	JWTSecret   string
	CORSOrigins []string
	UserID      string
	Policy      scheduler.Policy
}

// AuthEnabled reports whether the protected storage API should be mounted.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// Load reads .env from the working directory when present, then the
// environment. Variables already set in the environment win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, which keeps tests off the
// process environment.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		DBPath:      strings.TrimSpace(getenv("STUDYPLAN_DB")),
		Addr:        strings.TrimSpace(getenv("STUDYPLAN_ADDR")),
		LogMode:     strings.ToLower(strings.TrimSpace(getenv("STUDYPLAN_LOG_MODE"))),
		JWTSecret:   getenv("STUDYPLAN_JWT_SECRET"),
		CORSOrigins: splitList(getenv("STUDYPLAN_CORS_ORIGINS")),
		UserID:      strings.TrimSpace(getenv("STUDYPLAN_USER")),
		Policy:      scheduler.DefaultPolicy(),
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".studyplan", "studyplan.db")
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	switch cfg.LogMode {
	case "":
		cfg.LogMode = "dev"
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("STUDYPLAN_LOG_MODE must be dev or prod, got %q", cfg.LogMode)
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = append([]string(nil), defaultCORSOrigins...)
	}
	if cfg.UserID == "" {
		cfg.UserID = defaultUser
	}

	var err error
	if cfg.Policy.MinRemainingHours, err = positiveFloat(getenv, "STUDYPLAN_MIN_REMAINING_HOURS", cfg.Policy.MinRemainingHours); err != nil {
		return Config{}, err
	}
	if cfg.Policy.FallbackTaskHours, err = positiveFloat(getenv, "STUDYPLAN_FALLBACK_TASK_HOURS", cfg.Policy.FallbackTaskHours); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func positiveFloat(getenv func(string) string, name string, def float64) (float64, error) {
	v := strings.TrimSpace(getenv(name))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", name, v)
	}
	return f, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
