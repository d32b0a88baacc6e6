package digest

import (
	"unicode/utf8"

	"ytdigest/youtube"
)

// unknown fills metadata a failed candidate did not carry.
const unknown = "Unknown"

// Entry is one element of a digest response. A failed item carries Error and
// no TranscriptLength.
type Entry struct {
	Title            string `json:"title"`
	Channel          string `json:"channel"`
	PublishedAt      string `json:"published_at"`
	URL              string `json:"video_url"`
	Summary          string `json:"summary"`
	TranscriptLength *int   `json:"transcript_length,omitempty"`
	Error            string `json:"error,omitempty"`
}

// Failed reports whether the entry records a processing failure.
func (e Entry) Failed() bool { return e.Error != "" }

func successEntry(c youtube.Candidate, summary, transcript string) Entry {
	n := utf8.RuneCountInString(transcript)
	return Entry{
		Title:            c.Title,
		Channel:          c.Channel,
		PublishedAt:      c.PublishedAt,
		URL:              c.URL,
		Summary:          summary,
		TranscriptLength: &n,
	}
}

func failureEntry(c youtube.Candidate, err error) Entry {
	msg := err.Error()
	e := Entry{
		Title:       c.Title,
		Channel:     c.Channel,
		PublishedAt: c.PublishedAt,
		URL:         c.URL,
		Summary:     "Processing failed: " + msg,
		Error:       msg,
	}
	if e.Title == "" {
		e.Title = unknown
	}
	if e.Channel == "" {
		e.Channel = unknown
	}
	return e
}
