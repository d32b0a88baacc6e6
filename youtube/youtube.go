// Package youtube finds recent videos and downloads their audio.
//
// Search goes through the YouTube Data API v3; audio download shells out to yt-dlp.
package youtube

import (
	"errors"
	"strconv"
)

// Sentinel errors for search and download operations.
var (
	ErrMissingAPIKey     = errors.New("youtube: API key not configured")
	ErrInvalidURL        = errors.New("youtube: invalid URL")
	ErrYtdlpNotInstalled = errors.New("youtube: yt-dlp not installed")
	ErrAudioNotFound     = errors.New("downloaded file not found")
	ErrNetworkTimeout    = errors.New("youtube: network timeout")
)

// Candidate is a video returned by search, before any processing.
type Candidate struct {
	// ID is the YouTube video ID (e.g., "dQw4w9WgXcQ").
	ID string `json:"id"`

	// Title is the video title.
	Title string `json:"title"`

	// Channel is the display name of the channel.
	Channel string `json:"channel"`

	// PublishedAt is the publish timestamp as reported by the API (RFC3339).
	PublishedAt string `json:"published_at"`

	// URL is the watch URL for the video.
	URL string `json:"video_url"`
}

// WatchURL returns the full YouTube URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// SearchError wraps errors with context about the search call.
type SearchError struct {
	Query string // Free-text query sent to the API
	Err   error  // Underlying error
}

func (e *SearchError) Error() string {
	return "youtube: search " + strconv.Quote(e.Query) + ": " + e.Err.Error()
}

func (e *SearchError) Unwrap() error { return e.Err }

// DownloadError wraps errors with context about an audio download.
type DownloadError struct {
	URL    string // Video URL being downloaded
	Stderr string // Trimmed yt-dlp stderr, if any
	Err    error  // Underlying error
}

func (e *DownloadError) Error() string {
	msg := "download " + e.URL + ": " + e.Err.Error()
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *DownloadError) Unwrap() error { return e.Err }

