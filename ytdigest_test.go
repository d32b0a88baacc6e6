package ytdigest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ytdigest/internal/config"
)

func TestNew_WithoutCredentials(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ScratchDir = t.TempDir()

	svc, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if svc.Health.OpenAIKeyAvailable || svc.Health.YouTubeKeyAvailable {
		t.Errorf("Health = %+v, want no keys", svc.Health)
	}

	entries := svc.Pipeline.Run(context.Background(), NewQuery("", nil))
	if entries == nil || len(entries) != 0 {
		t.Errorf("Run() without a YouTube key = %#v, want empty slice", entries)
	}
}

func TestService_Handler(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ScratchDir = t.TempDir()
	cfg.OpenAIKey = "sk-test"

	svc, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/daily_digest", strings.NewReader(`{"category": "ports"}`))
	rec := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("POST /daily_digest = %d %q, want 200 []", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, req)
	if !strings.Contains(rec.Body.String(), `"openai_key_available":true`) {
		t.Errorf("GET /health = %q", rec.Body.String())
	}
}

func TestErrorAliases(t *testing.T) {
	err := &SizeError{Size: 10}
	if !errors.Is(err, ErrSizeViolation) {
		t.Error("SizeError does not match ErrSizeViolation")
	}
	wrapped := &ItemError{Err: &DownloadError{URL: "u", Err: ErrYtdlpNotInstalled}}
	if !errors.Is(wrapped, ErrYtdlpNotInstalled) {
		t.Error("ItemError does not unwrap to the download cause")
	}
}
