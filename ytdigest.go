package ytdigest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	digesthttp "ytdigest/http"
	"ytdigest/internal/config"
	"ytdigest/internal/digest"
	"ytdigest/internal/scratch"
	"ytdigest/internal/summarize"
	"ytdigest/internal/transcribe"
	"ytdigest/youtube"
)

type (
	// Config is the service configuration.
	Config = config.Config
	// Query is a digest topic plus entity names.
	Query = digest.Query
	// Entry is one element of a digest.
	Entry = digest.Entry
)

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) { return config.Load() }

// NewQuery returns a Query with defaults applied.
func NewQuery(topic string, entities []string) Query { return digest.NewQuery(topic, entities) }

// Service is a fully wired digest pipeline.
type Service struct {
	Pipeline *digest.Pipeline
	Health   digesthttp.Health
}

// New wires the pipeline collaborators from cfg. Missing credentials are not
// an error; the affected stages degrade instead.
func New(ctx context.Context, cfg *Config) (*Service, error) {
	sd, err := scratch.New(cfg.ScratchDir)
	if err != nil {
		return nil, err
	}

	hc := digesthttp.NewClient(&digesthttp.Config{
		Timeout:   cfg.HTTPTimeout,
		UserAgent: "ytdigest/1.0",
		Transport: digesthttp.DefaultTransportConfig(),
	})

	deps := digest.Deps{
		Downloader: &youtube.Downloader{YtdlpPath: cfg.YtdlpPath, Timeout: cfg.YtdlpTimeout},
		Transcriber: transcribe.New(transcribe.Config{
			APIKey:     cfg.OpenAIKey,
			BaseURL:    cfg.OpenAIBaseURL,
			Model:      cfg.TranscriptionModel,
			HTTPClient: hc,
		}),
		Scratch: sd,
	}

	if cfg.HasYouTubeKey() {
		s, err := youtube.NewAPISearcher(ctx, cfg.YouTubeKey)
		if err != nil {
			return nil, fmt.Errorf("youtube search: %w", err)
		}
		deps.Searcher = s
	} else {
		slog.Warn("YOUTUBE_API_KEY not set; digests will be empty")
	}

	var gen summarize.Generator
	if g := summarize.NewLLMGenerator(cfg.OpenAIBaseURL, cfg.OpenAIKey, cfg.SummaryModel, hc); g != nil {
		gen = g
	} else {
		slog.Warn("OPENAI_API_KEY not set; transcription and summaries are unavailable")
	}
	deps.Summarizer = summarize.New(gen, digest.DefaultEntities)

	return &Service{
		Pipeline: digest.New(deps),
		Health: digesthttp.Health{
			OpenAIKeyAvailable:  cfg.HasOpenAIKey(),
			YouTubeKeyAvailable: cfg.HasYouTubeKey(),
		},
	}, nil
}

// Handler returns the HTTP API for the service.
func (s *Service) Handler() http.Handler {
	return digesthttp.NewHandler(s.Pipeline, s.Health)
}
