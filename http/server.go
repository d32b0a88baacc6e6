package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/rs/cors"

	"ytdigest/internal/digest"
	"ytdigest/internal/metrics"
)

// maxBodyBytes bounds a digest request body.
const maxBodyBytes = 1 << 20

// Digester runs one digest.
type Digester interface {
	Run(ctx context.Context, q digest.Query) []digest.Entry
}

// Health is the credential availability reported by /health.
type Health struct {
	OpenAIKeyAvailable  bool `json:"openai_key_available"`
	YouTubeKeyAvailable bool `json:"youtube_key_available"`
}

type healthResponse struct {
	Status string `json:"status"`
	Health
}

// NewHandler returns the service's routes wrapped in a CORS handler that
// admits every origin.
func NewHandler(d Digester, health Health) http.Handler {
	s := &server{digester: d, health: health}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /daily_digest", s.handleDigest)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	return cors.AllowAll().Handler(mux)
}

type server struct {
	digester Digester
	health   Health
}

func (s *server) handleDigest(w http.ResponseWriter, r *http.Request) {
	q, err := decodeDigestRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		slog.Warn("http: rejected digest request", slog.Any("error", err))
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// A started digest runs to completion even if the caller goes away.
	ctx := context.WithoutCancel(r.Context())
	writeJSON(w, http.StatusOK, s.run(ctx, q))
}

// run executes the digest, turning a panic into an empty result.
func (s *server) run(ctx context.Context, q digest.Query) (entries []digest.Entry) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("http: digest panicked",
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())))
			entries = []digest.Entry{}
		}
	}()

	entries = s.digester.Run(ctx, q)
	if entries == nil {
		entries = []digest.Entry{}
	}
	return entries
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Health: s.health})
}

func (s *server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, metrics.Format())
}

// decodeDigestRequest parses a digest request body:
//
//	{"category": "<topic>", "company": <string|[]string>, "companies": <string|[]string>}
//
// Every field is optional. "company" wins when it is present and non-empty,
// otherwise "companies" is used.
func decodeDigestRequest(body io.Reader) (digest.Query, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return digest.Query{}, fmt.Errorf("%w: read body: %v", digest.ErrInvalidInput, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return digest.Query{}, fmt.Errorf("%w: request body must be a JSON object", digest.ErrInvalidInput)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return digest.Query{}, fmt.Errorf("%w: request body must be a JSON object", digest.ErrInvalidInput)
	}

	var topic string
	if v, ok := fields["category"]; ok && v != nil {
		s, isString := v.(string)
		if !isString {
			return digest.Query{}, fmt.Errorf("%w: category must be a string", digest.ErrInvalidInput)
		}
		topic = s
	}

	raw := fields["company"]
	if isEmptyValue(raw) {
		raw = fields["companies"]
	}
	entities, err := digest.NormalizeEntities(raw)
	if err != nil {
		return digest.Query{}, err
	}

	return digest.NewQuery(topic, entities), nil
}

// isEmptyValue reports whether a decoded JSON value is absent or empty.
func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	}
	return false
}
