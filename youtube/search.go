package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Searcher finds candidate videos for a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string, opts SearchOptions) ([]Candidate, error)
}

// SearchOptions configures a search call.
type SearchOptions struct {
	// MaxResults caps the number of items requested from the API.
	MaxResults int64

	// PublishedAfter restricts results to videos published after this time.
	// Zero time means no filter.
	PublishedAfter time.Time
}

// APISearcher implements Searcher using YouTube Data API v3 search.list.
type APISearcher struct {
	service *youtube.Service
}

// NewAPISearcher creates a searcher authenticated with an API key.
// Extra client options (endpoint overrides in tests, for example) are appended.
func NewAPISearcher(ctx context.Context, apiKey string, opts ...option.ClientOption) (*APISearcher, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &APISearcher{service: service}, nil
}

// Search issues a single search.list call for videos ordered by date.
// Items without a video ID are skipped.
func (a *APISearcher) Search(ctx context.Context, query string, opts SearchOptions) ([]Candidate, error) {
	call := a.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		Order("date").
		Context(ctx)

	if opts.MaxResults > 0 {
		call = call.MaxResults(opts.MaxResults)
	}
	if !opts.PublishedAfter.IsZero() {
		call = call.PublishedAfter(opts.PublishedAfter.UTC().Format(time.RFC3339))
	}

	resp, err := call.Do()
	if err != nil {
		if ctx.Err() != nil {
			return nil, &SearchError{Query: query, Err: ErrNetworkTimeout}
		}
		return nil, &SearchError{Query: query, Err: err}
	}

	candidates := make([]Candidate, 0, len(resp.Items))
	for _, item := range resp.Items {
		if c, ok := candidateFromResult(item); ok {
			candidates = append(candidates, c)
		}
	}

	slog.Debug("youtube: search complete",
		slog.String("query", query),
		slog.Int("items", len(resp.Items)),
		slog.Int("candidates", len(candidates)),
	)
	return candidates, nil
}

// candidateFromResult converts a search result into a Candidate.
// It reports false when the result carries no resolvable video ID.
func candidateFromResult(item *youtube.SearchResult) (Candidate, bool) {
	if item == nil || item.Id == nil || item.Id.VideoId == "" {
		return Candidate{}, false
	}

	c := Candidate{
		ID:  item.Id.VideoId,
		URL: WatchURL(item.Id.VideoId),
	}
	if item.Snippet != nil {
		c.Title = item.Snippet.Title
		c.Channel = item.Snippet.ChannelTitle
		c.PublishedAt = item.Snippet.PublishedAt
	}
	return c, true
}
