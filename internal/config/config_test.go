package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"OPENAI_API_KEY", "YOUTUBE_API_KEY", "OPENAI_BASE_URL",
	"DIGEST_SUMMARY_MODEL", "DIGEST_TRANSCRIPTION_MODEL",
	"DIGEST_YTDLP_PATH", "DIGEST_YTDLP_TIMEOUT", "DIGEST_SCRATCH_DIR",
	"DIGEST_ADDR", "DIGEST_HTTP_TIMEOUT", "DIGEST_LOG_LEVEL",
}

// clearEnv blanks every variable Load reads and moves into an empty directory
// so no .env file is picked up.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HasOpenAIKey() || cfg.HasYouTubeKey() {
		t.Error("keys reported available with empty environment")
	}
	if cfg.SummaryModel != "gpt-4o-mini" || cfg.TranscriptionModel != "whisper-1" {
		t.Errorf("models = %q/%q", cfg.SummaryModel, cfg.TranscriptionModel)
	}
	if cfg.YtdlpTimeout != 10*time.Minute {
		t.Errorf("YtdlpTimeout = %v", cfg.YtdlpTimeout)
	}
	if cfg.HTTPTimeout != 0 {
		t.Errorf("HTTPTimeout = %v, want none", cfg.HTTPTimeout)
	}
	if cfg.Addr != ":5000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", " sk-test ")
	t.Setenv("YOUTUBE_API_KEY", "yt-test")
	t.Setenv("DIGEST_YTDLP_TIMEOUT", "90s")
	t.Setenv("DIGEST_HTTP_TIMEOUT", "2m")
	t.Setenv("DIGEST_ADDR", "127.0.0.1:8080")
	t.Setenv("DIGEST_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("OpenAIKey = %q, want trimmed", cfg.OpenAIKey)
	}
	if !cfg.HasYouTubeKey() {
		t.Error("HasYouTubeKey() = false")
	}
	if cfg.YtdlpTimeout != 90*time.Second || cfg.HTTPTimeout != 2*time.Minute {
		t.Errorf("timeouts = %v/%v", cfg.YtdlpTimeout, cfg.HTTPTimeout)
	}
	if cfg.Addr != "127.0.0.1:8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoad_DotEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "from-process")

	if err := os.WriteFile(filepath.Join(".", ".env"), []byte("YOUTUBE_API_KEY=from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.YouTubeKey != "from-file" {
		t.Errorf("YouTubeKey = %q, want value from .env", cfg.YouTubeKey)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DIGEST_YTDLP_TIMEOUT", "soon"},
		{"DIGEST_YTDLP_TIMEOUT", "-1s"},
		{"DIGEST_HTTP_TIMEOUT", "-5s"},
		{"DIGEST_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q succeeded, want error", tt.key, tt.value)
			}
		})
	}
}
