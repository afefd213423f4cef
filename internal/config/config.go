package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the board service.
type Config struct {
	AppName       string
	AppEnv        string
	AppPort       string
	DatabaseURL   string
	RedisURL      string
	SessionCookie string
	SessionTTL    time.Duration
	UploadDir     string
	UploadBaseURL string
	BodyLimitMB   int
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("BOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Coinboard API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "3000")
	v.SetDefault("session.cookie", "board_session")
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("upload.dir", "public/uploads")
	v.SetDefault("upload.base_url", "/uploads")
	v.SetDefault("body_limit_mb", 10)

	ttlString := v.GetString("session.ttl")
	if ttlString == "" {
		ttlString = "24h"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid session ttl: %w", err)
	}

	cfg := Config{
		AppName:       v.GetString("app.name"),
		AppEnv:        v.GetString("app.env"),
		AppPort:       v.GetString("app.port"),
		DatabaseURL:   v.GetString("database.url"),
		RedisURL:      v.GetString("redis.url"),
		SessionCookie: v.GetString("session.cookie"),
		SessionTTL:    ttl,
		UploadDir:     v.GetString("upload.dir"),
		UploadBaseURL: strings.TrimSuffix(v.GetString("upload.base_url"), "/"),
		BodyLimitMB:   v.GetInt("body_limit_mb"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("redis url must be provided")
	}

	if cfg.BodyLimitMB <= 0 {
		cfg.BodyLimitMB = 10
	}

	return cfg, nil
}
