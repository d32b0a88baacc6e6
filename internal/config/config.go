// Package config manages application configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Credentials. Either may be empty; the matching stages then degrade.
	OpenAIKey  string
	YouTubeKey string

	// Generation and transcription settings
	OpenAIBaseURL      string
	SummaryModel       string
	TranscriptionModel string

	// yt-dlp settings
	YtdlpPath    string
	YtdlpTimeout time.Duration

	// ScratchDir holds downloaded audio. Empty selects the OS temp dir.
	ScratchDir string

	// Server settings
	Addr string

	// HTTPTimeout bounds outbound API calls. Zero means no timeout.
	HTTPTimeout time.Duration

	LogLevel slog.Level
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		OpenAIBaseURL:      "https://api.openai.com/v1",
		SummaryModel:       "gpt-4o-mini",
		TranscriptionModel: "whisper-1",
		YtdlpPath:          "yt-dlp",
		YtdlpTimeout:       10 * time.Minute,
		Addr:               ":5000",
		LogLevel:           slog.LevelInfo,
	}
}

// Load reads configuration from the environment and applies defaults.
// A .env file in the working directory, when present, overrides the process
// environment.
func Load() (*Config, error) {
	if err := godotenv.Overload(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() error {
	c.OpenAIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	c.YouTubeKey = strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY"))

	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		c.OpenAIBaseURL = v
	}
	if v := os.Getenv("DIGEST_SUMMARY_MODEL"); v != "" {
		c.SummaryModel = v
	}
	if v := os.Getenv("DIGEST_TRANSCRIPTION_MODEL"); v != "" {
		c.TranscriptionModel = v
	}
	if v := os.Getenv("DIGEST_YTDLP_PATH"); v != "" {
		c.YtdlpPath = v
	}
	if v := os.Getenv("DIGEST_YTDLP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("DIGEST_YTDLP_TIMEOUT: %w", err)
		}
		c.YtdlpTimeout = d
	}
	if v := os.Getenv("DIGEST_SCRATCH_DIR"); v != "" {
		c.ScratchDir = v
	}
	if v := os.Getenv("DIGEST_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("DIGEST_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("DIGEST_HTTP_TIMEOUT: %w", err)
		}
		c.HTTPTimeout = d
	}
	if v := os.Getenv("DIGEST_LOG_LEVEL"); v != "" {
		if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("DIGEST_LOG_LEVEL: %w", err)
		}
	}
	return nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.YtdlpTimeout <= 0 {
		return fmt.Errorf("ytdlp timeout must be positive")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must be non-negative")
	}
	if c.YtdlpPath == "" {
		return fmt.Errorf("ytdlp path must not be empty")
	}
	if c.OpenAIBaseURL == "" {
		return fmt.Errorf("openai base url must not be empty")
	}
	if c.Addr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	return nil
}

// HasOpenAIKey reports whether transcription and summarization are available.
func (c *Config) HasOpenAIKey() bool { return c.OpenAIKey != "" }

// HasYouTubeKey reports whether search is available.
func (c *Config) HasYouTubeKey() bool { return c.YouTubeKey != "" }
