// Package summarize condenses transcripts into short bullet-point digests with an LLM.
package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
)

const (
	// MinTranscriptChars is the shortest transcript worth sending to the LLM.
	MinTranscriptChars = 50
	// MaxTranscriptChars bounds the transcript embedded in the prompt.
	MaxTranscriptChars = 12000
	// MaxTokens bounds the generated summary.
	MaxTokens = 600
	// Temperature keeps summaries close to the transcript.
	Temperature = 0.3
)

// Fixed summaries used when no generation happens or it yields nothing.
const (
	PlaceholderNoKey    = "OpenAI API key not available for summarization"
	PlaceholderTooShort = "Transcript too short to generate meaningful summary"
	PlaceholderEmpty    = "Summary could not be generated - empty response"
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// LLMGenerator is a Generator backed by an OpenAI-compatible chat endpoint.
type LLMGenerator struct {
	complete func(ctx context.Context, prompt string) (string, error)
}

// NewLLMGenerator creates a generator for the given endpoint, key and model.
// It returns nil when apiKey is empty.
func NewLLMGenerator(baseURL, apiKey, model string, hc *http.Client) *LLMGenerator {
	if apiKey == "" {
		return nil
	}
	if hc == nil {
		hc = http.DefaultClient
	}

	client := llm.NewClient(baseURL, apiKey, model,
		llm.WithMaxTokens(MaxTokens),
		llm.WithTemperature(Temperature),
		llm.WithHTTPClient(hc),
	)
	return &LLMGenerator{
		complete: func(ctx context.Context, prompt string) (string, error) {
			return client.Complete(ctx, "", prompt,
				llm.WithChatTemperature(Temperature),
				llm.WithChatMaxTokens(MaxTokens),
			)
		},
	}
}

// Generate sends prompt as a single user message.
func (g *LLMGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.complete(ctx, prompt)
}

// Summarizer builds the digest prompt and post-processes the generated text.
type Summarizer struct {
	gen      Generator
	entities []string
}

// New creates a Summarizer. entities are the organizations the prompt asks the
// model to watch for. A nil gen makes every summary the no-key placeholder.
func New(gen Generator, entities []string) *Summarizer {
	return &Summarizer{gen: gen, entities: entities}
}

// Summarize returns a summary of transcript for topic. Short transcripts and
// empty generations yield fixed placeholder text rather than an error.
func (s *Summarizer) Summarize(ctx context.Context, topic, transcript string) (string, error) {
	if s.gen == nil {
		return PlaceholderNoKey, nil
	}
	if len([]rune(strings.TrimSpace(transcript))) < MinTranscriptChars {
		return PlaceholderTooShort, nil
	}

	prompt := fmt.Sprintf(summaryPrompt, topic, topic,
		strings.Join(s.entities, ", "), Truncate(transcript, MaxTranscriptChars))

	slog.Debug("generating summary", slog.Int("prompt_chars", len(prompt)))
	out, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	if strings.TrimSpace(out) == "" {
		return PlaceholderEmpty, nil
	}
	return out, nil
}

// Truncate cuts s to at most n runes, appending "..." when anything was cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
