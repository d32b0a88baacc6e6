// Package metrics keeps process-wide operational counters for the digest service.
package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// SlowThreshold is the duration after which Track logs an operation as slow.
var SlowThreshold = 5 * time.Second

var counters struct {
	DigestRequests      atomic.Int64
	SearchRequests      atomic.Int64
	SearchErrors        atomic.Int64
	Downloads           atomic.Int64
	DownloadErrors      atomic.Int64
	Transcriptions      atomic.Int64
	TranscriptionErrors atomic.Int64
	Summaries           atomic.Int64
	SummaryErrors       atomic.Int64
	ItemsSucceeded      atomic.Int64
	ItemsFailed         atomic.Int64
}

// keys fixes the output order of Format.
var keys = []string{
	"digest_requests",
	"search_requests", "search_errors",
	"downloads", "download_errors",
	"transcriptions", "transcription_errors",
	"summaries", "summary_errors",
	"items_succeeded", "items_failed",
}

// Snapshot returns the current value of every counter.
func Snapshot() map[string]int64 {
	return map[string]int64{
		"digest_requests":      counters.DigestRequests.Load(),
		"search_requests":      counters.SearchRequests.Load(),
		"search_errors":        counters.SearchErrors.Load(),
		"downloads":            counters.Downloads.Load(),
		"download_errors":      counters.DownloadErrors.Load(),
		"transcriptions":       counters.Transcriptions.Load(),
		"transcription_errors": counters.TranscriptionErrors.Load(),
		"summaries":            counters.Summaries.Load(),
		"summary_errors":       counters.SummaryErrors.Load(),
		"items_succeeded":      counters.ItemsSucceeded.Load(),
		"items_failed":         counters.ItemsFailed.Load(),
	}
}

// Format returns the counters as "name value" lines for the /metrics endpoint.
func Format() string {
	m := Snapshot()
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

func IncrDigestRequests() { counters.DigestRequests.Add(1) }
func IncrItemsSucceeded() { counters.ItemsSucceeded.Add(1) }
func IncrItemsFailed()    { counters.ItemsFailed.Add(1) }

// RecordSearch counts a search call and, if err is non-nil, a search error.
func RecordSearch(err error) { record(&counters.SearchRequests, &counters.SearchErrors, err) }

// RecordDownload counts a download attempt.
func RecordDownload(err error) { record(&counters.Downloads, &counters.DownloadErrors, err) }

// RecordTranscription counts a transcription call.
func RecordTranscription(err error) {
	record(&counters.Transcriptions, &counters.TranscriptionErrors, err)
}

// RecordSummary counts a summarization call.
func RecordSummary(err error) { record(&counters.Summaries, &counters.SummaryErrors, err) }

func record(calls, errs *atomic.Int64, err error) {
	calls.Add(1)
	if err != nil {
		errs.Add(1)
	}
}

// Track runs fn and logs a warning if it takes longer than SlowThreshold.
func Track(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	if elapsed := time.Since(start); elapsed > SlowThreshold {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
