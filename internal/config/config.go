package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Port to listen on. Zero means "pick the first free port from 8000",
	// matching the zero-configuration behavior the gallery ships with.
	Port int

	// GalleryDir is the directory whose images are served. The server
	// treats it as read-only for its lifetime.
	GalleryDir string

	// DisableAnalysis forces size-only metadata for every file, as if no
	// decoding capability were present.
	DisableAnalysis bool

	// PaletteSize is the maximum number of swatches per image.
	PaletteSize int

	Environment string
	LogLevel    string
}

func Load() (*Config, error) {
	// A .env next to the binary is a convenience for development; a
	// missing file is not an error.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Port = getEnvInt("PORT", 0)

	cfg.GalleryDir = getEnvString("GALLERY_DIR", ".")

	cfg.DisableAnalysis = getEnvBool("GALLERY_DISABLE_ANALYSIS", false)
	cfg.PaletteSize = getEnvInt("GALLERY_PALETTE_SIZE", 5)

	cfg.Environment = getEnvString("ENVIRONMENT", "development")
	cfg.LogLevel = getEnvString("LOG_LEVEL", "info")

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	if c.PaletteSize < 1 || c.PaletteSize > 32 {
		return fmt.Errorf("invalid palette size: %d", c.PaletteSize)
	}

	info, err := os.Stat(c.GalleryDir)
	if err != nil {
		return fmt.Errorf("gallery directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("gallery directory is not a directory: %s", c.GalleryDir)
	}

	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
