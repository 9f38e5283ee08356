// Package config reads the service settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"workshop-genie/internal/service"

	"github.com/labstack/gommon/log"
)

// Config 所有設定皆來自環境變數，未設定時使用預設值
type Config struct {
	HTTPAddr string

	// DatabaseURL 為空時使用記憶體儲存
	DatabaseURL string

	// RedisAddr 為空時不啟用 workshop 快取
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	WorkerCount   int
	PasswordMode  service.PasswordMode
	AdminAPIKey   string
	SeedWorkshops bool
	LogLevel      log.Lvl
	Debug         bool
}

// Load 讀取環境變數；任何無法解析的值都回傳錯誤
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AdminAPIKey:   os.Getenv("ADMIN_API_KEY"),
	}

	var err error
	if cfg.RedisDB, err = envInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = envDuration("CACHE_TTL", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WorkerCount, err = envInt("WORKER_COUNT", 1); err != nil {
		return Config{}, err
	}
	if cfg.WorkerCount <= 0 {
		return Config{}, fmt.Errorf("WORKER_COUNT must be positive, got %d", cfg.WorkerCount)
	}
	if cfg.PasswordMode, err = service.ParsePasswordMode(os.Getenv("PASSWORD_MODE")); err != nil {
		return Config{}, fmt.Errorf("PASSWORD_MODE: %w", err)
	}
	if cfg.SeedWorkshops, err = envBool("SEED_WORKSHOPS", true); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = envBool("DEBUG", false); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = parseLevel(env("LOG_LEVEL", "info")); err != nil {
		return Config{}, err
	}
	if cfg.Debug {
		cfg.LogLevel = log.DEBUG
	}
	return cfg, nil
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
