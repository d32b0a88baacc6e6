// Package digest turns a topic query into a list of summarized videos.
//
// A run searches for recent candidates, then processes them one at a time:
// download the audio, check its size, transcribe it, summarize the transcript.
// A failure in any stage marks that item failed and processing moves on; a
// run never fails as a whole.
package digest

import (
	"context"
	"log/slog"
	"time"

	"ytdigest/internal/metrics"
	"ytdigest/internal/scratch"
	"ytdigest/youtube"
)

// Limits applied to every run.
const (
	// MaxCandidates is the number of search results requested.
	MaxCandidates = 5
	// MaxSucceeded stops a run once this many items have been summarized.
	MaxSucceeded = 3
	// RecencyWindow bounds how old a candidate may be.
	RecencyWindow = 30 * 24 * time.Hour

	// MinAudioBytes is the smallest audio file accepted for transcription.
	MinAudioBytes = 1000
	// MaxAudioBytes is the transcription service's upload limit.
	MaxAudioBytes = 25 << 20
)

// Transcriber converts an audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// Summarizer condenses a transcript for a topic.
type Summarizer interface {
	Summarize(ctx context.Context, topic, transcript string) (string, error)
}

// Deps are the collaborators a Pipeline drives. Searcher may be nil, which
// makes every run return an empty digest.
type Deps struct {
	Searcher    youtube.Searcher
	Downloader  youtube.AudioDownloader
	Transcriber Transcriber
	Summarizer  Summarizer
	Scratch     *scratch.Dir
}

// Pipeline runs digests. It holds no per-run state, so one Pipeline may serve
// concurrent runs.
type Pipeline struct {
	deps Deps
	now  func() time.Time

	maxCandidates int64
	maxSucceeded  int
}

// New returns a Pipeline using deps.
func New(deps Deps) *Pipeline {
	return &Pipeline{
		deps:          deps,
		now:           time.Now,
		maxCandidates: MaxCandidates,
		maxSucceeded:  MaxSucceeded,
	}
}

// Run produces the digest for q. Entries keep search order. Failed items are
// included with an error message and do not count toward MaxSucceeded.
func (p *Pipeline) Run(ctx context.Context, q Query) []Entry {
	metrics.IncrDigestRequests()

	search := q.String()
	slog.Info("digest: searching", slog.String("query", search))

	candidates := p.retrieve(ctx, search)
	entries := make([]Entry, 0, len(candidates))
	succeeded := 0

	for i, c := range candidates {
		if succeeded >= p.maxSucceeded {
			slog.Info("digest: reached processing limit", slog.Int("succeeded", succeeded))
			break
		}

		slog.Info("digest: processing video",
			slog.Int("index", i+1),
			slog.Int("total", len(candidates)),
			slog.String("title", c.Title))

		entry, err := p.processItem(ctx, q.Topic, c)
		if err != nil {
			attrs := []any{slog.String("video_id", c.ID), slog.Any("error", err)}
			if ie, ok := err.(*ItemError); ok {
				attrs = append(attrs, slog.String("kind", ie.Kind()), slog.String("stage", ie.Stage.String()))
			}
			slog.Warn("digest: item failed", attrs...)
			metrics.IncrItemsFailed()
			entries = append(entries, failureEntry(c, err))
			continue
		}

		metrics.IncrItemsSucceeded()
		entries = append(entries, entry)
		succeeded++
	}

	slog.Info("digest: complete",
		slog.Int("entries", len(entries)),
		slog.Int("succeeded", succeeded))
	return entries
}

// retrieve runs the search. Any failure, including a missing searcher, yields
// no candidates.
func (p *Pipeline) retrieve(ctx context.Context, query string) []youtube.Candidate {
	if p.deps.Searcher == nil {
		slog.Error("digest: YouTube API key not available")
		return nil
	}

	opts := youtube.SearchOptions{
		MaxResults:     p.maxCandidates,
		PublishedAfter: p.now().UTC().Add(-RecencyWindow),
	}

	var candidates []youtube.Candidate
	err := metrics.Track(ctx, "search", func(ctx context.Context) error {
		var err error
		candidates, err = p.deps.Searcher.Search(ctx, query, opts)
		return err
	})
	metrics.RecordSearch(err)
	if err != nil {
		slog.Error("digest: error fetching YouTube videos", slog.Any("error", err))
		return nil
	}

	if int64(len(candidates)) > p.maxCandidates {
		candidates = candidates[:p.maxCandidates]
	}
	slog.Info("digest: found videos", slog.Int("count", len(candidates)))
	return candidates
}

// processItem takes one candidate through every stage. The scratch files it
// creates are gone when it returns, whatever the outcome.
func (p *Pipeline) processItem(ctx context.Context, topic string, c youtube.Candidate) (Entry, error) {
	name := p.deps.Scratch.NewName()
	defer p.deps.Scratch.Purge(name)

	stage := StageDownloading
	logStage(c, stage)

	var path string
	err := metrics.Track(ctx, "download", func(ctx context.Context) error {
		var err error
		path, err = p.deps.Downloader.DownloadAudio(ctx, c.URL, p.deps.Scratch.Path(), name)
		return err
	})
	metrics.RecordDownload(err)
	if err != nil {
		return Entry{}, &ItemError{Stage: stage, Err: err}
	}

	stage = StageSizeChecking
	logStage(c, stage)
	size, err := p.deps.Scratch.Stat(path)
	if err == nil {
		err = CheckSize(size)
	}
	if err != nil {
		return Entry{}, &ItemError{Stage: stage, Err: err}
	}

	stage = StageTranscribing
	logStage(c, stage)
	var transcript string
	err = metrics.Track(ctx, "transcribe", func(ctx context.Context) error {
		var err error
		transcript, err = p.deps.Transcriber.Transcribe(ctx, path)
		return err
	})
	metrics.RecordTranscription(err)
	p.deps.Scratch.Purge(name)
	if err != nil {
		return Entry{}, &ItemError{Stage: stage, Err: err}
	}

	stage = StageSummarizing
	logStage(c, stage)
	var summary string
	err = metrics.Track(ctx, "summarize", func(ctx context.Context) error {
		var err error
		summary, err = p.deps.Summarizer.Summarize(ctx, topic, transcript)
		return err
	})
	metrics.RecordSummary(err)
	if err != nil {
		return Entry{}, &ItemError{Stage: stage, Err: err}
	}

	logStage(c, StageDone)
	return successEntry(c, summary, transcript), nil
}

// CheckSize validates an audio payload size against the transcription limits.
func CheckSize(size int64) error {
	switch {
	case size < MinAudioBytes:
		return &SizeError{Size: size}
	case size > MaxAudioBytes:
		return &SizeError{Size: size, TooLarge: true}
	}
	return nil
}

func logStage(c youtube.Candidate, s Stage) {
	slog.Debug("digest: stage", slog.String("video_id", c.ID), slog.String("stage", s.String()))
}
