package digest

import (
	"errors"
	"fmt"
)

// Sentinel errors for digest operations.
var (
	// ErrInvalidInput marks a malformed request. It is the only error the API
	// reports to callers as a failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSizeViolation matches every *SizeError.
	ErrSizeViolation = errors.New("audio size out of bounds")
)

// Stage is a step in the per-item state machine.
type Stage int

const (
	StagePending Stage = iota
	StageDownloading
	StageSizeChecking
	StageTranscribing
	StageSummarizing
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StagePending:
		return "pending"
	case StageDownloading:
		return "downloading"
	case StageSizeChecking:
		return "size_checking"
	case StageTranscribing:
		return "transcribing"
	case StageSummarizing:
		return "summarizing"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// ItemError is the failure of a single candidate. It never escapes Run; the
// pipeline turns it into an Entry with the error message attached.
type ItemError struct {
	Stage Stage // Stage that failed
	Err   error // Underlying error
}

// Error returns the underlying message alone, which is what callers see.
func (e *ItemError) Error() string { return e.Err.Error() }

func (e *ItemError) Unwrap() error { return e.Err }

// Kind names the failure class for logs and metrics.
func (e *ItemError) Kind() string {
	switch e.Stage {
	case StageDownloading:
		return "download_failure"
	case StageSizeChecking:
		return "size_violation"
	case StageTranscribing:
		return "transcription_failure"
	case StageSummarizing:
		return "summarization_failure"
	default:
		return "unexpected_failure"
	}
}

// SizeError reports an audio payload outside [MinAudioBytes, MaxAudioBytes].
type SizeError struct {
	Size     int64
	TooLarge bool
}

func (e *SizeError) Error() string {
	if e.TooLarge {
		return fmt.Sprintf("file too large: %.1fMB (max %dMB)", float64(e.Size)/(1<<20), MaxAudioBytes>>20)
	}
	return fmt.Sprintf("audio file too small (%d bytes) - likely corrupted", e.Size)
}

func (e *SizeError) Is(target error) bool { return target == ErrSizeViolation }
