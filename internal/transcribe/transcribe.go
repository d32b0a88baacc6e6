// Package transcribe turns audio files into text using a Whisper-compatible API.
package transcribe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrMissingAPIKey is returned by Transcribe when no API key was configured.
var ErrMissingAPIKey = errors.New("OpenAI API key not available")

// Config configures a transcription Client.
type Config struct {
	APIKey     string
	BaseURL    string // empty selects the OpenAI default
	Model      string // empty selects whisper-1
	HTTPClient *http.Client
}

// Client transcribes audio files through the audio/transcriptions endpoint.
type Client struct {
	api   *openai.Client
	model string
}

// New creates a Client. A Client without an API key is valid; every
// Transcribe call on it fails with ErrMissingAPIKey.
func New(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}
	if cfg.APIKey == "" {
		return &Client{model: model}
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	}

	return &Client{api: openai.NewClientWithConfig(oc), model: model}
}

// Transcribe uploads the audio file at path and returns its transcript.
func (c *Client) Transcribe(ctx context.Context, path string) (string, error) {
	if c.api == nil {
		return "", ErrMissingAPIKey
	}

	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		FilePath: path,
		Format:   openai.AudioResponseFormatText,
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	text := normalize(resp)
	slog.Debug("transcription complete", slog.Int("chars", len([]rune(text))))
	return text, nil
}

// normalize collapses the two response shapes into one string: text formats
// arrive in Text, verbose JSON formats may only carry per-segment text.
func normalize(resp openai.AudioResponse) string {
	if strings.TrimSpace(resp.Text) != "" {
		return resp.Text
	}

	parts := make([]string, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		if s := strings.TrimSpace(seg.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
