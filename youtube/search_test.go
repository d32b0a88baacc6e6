package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const sampleSearchResponse = `{
  "kind": "youtube#searchListResponse",
  "items": [
    {
      "id": {"kind": "youtube#video", "videoId": "dQw4w9WgXcQ"},
      "snippet": {
        "title": "Shipping Weekly",
        "channelTitle": "Freight Talk",
        "publishedAt": "2026-10-10T08:00:00Z"
      }
    },
    {
      "id": {"kind": "youtube#channel", "channelId": "UCuAXFkgsw1L7xaCfnd5JJOw"},
      "snippet": {"title": "A channel, not a video"}
    },
    {
      "id": {"kind": "youtube#video", "videoId": "aaaaaaaaaaa"},
      "snippet": {
        "title": "Port Congestion Update",
        "channelTitle": "Maritime Desk",
        "publishedAt": "2026-10-09T12:30:00Z"
      }
    }
  ]
}`

func TestNewAPISearcher_MissingKey(t *testing.T) {
	_, err := NewAPISearcher(context.Background(), "")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("NewAPISearcher(\"\") error = %v, want ErrMissingAPIKey", err)
	}
}

func TestAPISearcher_Search(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{
			"q":              q.Get("q"),
			"type":           q.Get("type"),
			"order":          q.Get("order"),
			"part":           q.Get("part"),
			"maxResults":     q.Get("maxResults"),
			"publishedAfter": q.Get("publishedAfter"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleSearchResponse))
	}))
	defer srv.Close()

	searcher, err := NewAPISearcher(context.Background(), "test-key", option.WithEndpoint(srv.URL+"/"))
	if err != nil {
		t.Fatalf("NewAPISearcher() error = %v", err)
	}

	after := time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC)
	candidates, err := searcher.Search(context.Background(), `shipping "MSC"`, SearchOptions{
		MaxResults:     5,
		PublishedAfter: after,
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	want := map[string]string{
		"q":              `shipping "MSC"`,
		"type":           "video",
		"order":          "date",
		"part":           "snippet",
		"maxResults":     "5",
		"publishedAfter": "2026-09-19T00:00:00Z",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("request param %s = %q, want %q", k, got[k], v)
		}
	}

	if len(candidates) != 2 {
		t.Fatalf("Search() returned %d candidates, want 2", len(candidates))
	}
	first := candidates[0]
	if first.ID != "dQw4w9WgXcQ" || first.Title != "Shipping Weekly" || first.Channel != "Freight Talk" {
		t.Errorf("candidates[0] = %+v", first)
	}
	if first.URL != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("candidates[0].URL = %q", first.URL)
	}
	if first.PublishedAt != "2026-10-10T08:00:00Z" {
		t.Errorf("candidates[0].PublishedAt = %q", first.PublishedAt)
	}
	if candidates[1].ID != "aaaaaaaaaaa" {
		t.Errorf("order not preserved: candidates[1].ID = %q", candidates[1].ID)
	}
}

func TestAPISearcher_Search_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "quotaExceeded"}}`))
	}))
	defer srv.Close()

	searcher, err := NewAPISearcher(context.Background(), "test-key", option.WithEndpoint(srv.URL+"/"))
	if err != nil {
		t.Fatalf("NewAPISearcher() error = %v", err)
	}

	_, err = searcher.Search(context.Background(), "anything", SearchOptions{MaxResults: 5})
	var searchErr *SearchError
	if !errors.As(err, &searchErr) {
		t.Fatalf("Search() error = %v, want *SearchError", err)
	}
	if searchErr.Query != "anything" {
		t.Errorf("SearchError.Query = %q", searchErr.Query)
	}
}

func TestCandidateFromResult(t *testing.T) {
	tests := []struct {
		name string
		item *youtube.SearchResult
		ok   bool
	}{
		{name: "nil item", item: nil, ok: false},
		{name: "nil id", item: &youtube.SearchResult{}, ok: false},
		{name: "channel result", item: &youtube.SearchResult{Id: &youtube.ResourceId{ChannelId: "UC1"}}, ok: false},
		{name: "video without snippet", item: &youtube.SearchResult{Id: &youtube.ResourceId{VideoId: "abc"}}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := candidateFromResult(tt.item)
			if ok != tt.ok {
				t.Errorf("candidateFromResult() ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}
