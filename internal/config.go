// Package internal holds process-level wiring: configuration and the
// logger factory shared by the binaries.
package internal

import (
	"fmt"
	"time"
)

// Store backends selectable through STORE_BACKEND.
const (
	BackendBadger = "badger"
	BackendFile   = "file"
)

type Config struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT,required=true"`
	LogLevel string `env:"LOG_LEVEL,required=true"`

	StoreBackend   string `env:"STORE_BACKEND"`
	BadgerFilepath string `env:"BADGER_FILEPATH"`
	DataFilepath   string `env:"DATA_FILEPATH"`

	AuthSecret        string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	RequireAuth       bool          `env:"REQUIRE_AUTH"`

	DefaultAvatarURL string `env:"DEFAULT_AVATAR_URL"`
	MaxContentLength *int   `env:"MAX_CONTENT_LENGTH"`

	CORSOrigins []string `env:"CORS_ORIGINS"`
}

// Normalize fills defaults and rejects inconsistent combinations.
func (c *Config) Normalize() error {
	if c.StoreBackend == "" {
		c.StoreBackend = BackendBadger
	}
	switch c.StoreBackend {
	case BackendBadger:
		if c.BadgerFilepath == "" {
			return fmt.Errorf("BADGER_FILEPATH is required with the badger backend")
		}
	case BackendFile:
		if c.DataFilepath == "" {
			return fmt.Errorf("DATA_FILEPATH is required with the file backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if c.DefaultAvatarURL == "" {
		c.DefaultAvatarURL = "https://example.com/default-avatar.jpg"
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}
	return nil
}
